package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cppla/quoramock/store"
	"github.com/cppla/quoramock/utils"
)

// parseID reads the :id path parameter. Only positive integers address a row.
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// storageFailure answers a failed store call: ErrNotFound becomes 404, everything else
// is logged and hidden behind a generic 500.
func storageFailure(ctx *gin.Context, err error, notFound notFoundReply, code int, message string) {
	if errors.Is(err, store.ErrNotFound) {
		utils.Error(ctx, http.StatusNotFound, notFound.code, notFound.message)
		return
	}
	utils.Logger.Error(message,
		zap.Error(err),
		zap.String("request_id", utils.RequestID(ctx)),
		zap.String("path", ctx.FullPath()),
	)
	utils.Error(ctx, http.StatusInternalServerError, code, message)
}

type notFoundReply struct {
	code    int
	message string
}

var (
	questionNotFound = notFoundReply{code: 40410, message: "Question not found"}
	answerNotFound   = notFoundReply{code: 40430, message: "Answer not found"}
)
