package main

import (
	"context"
	stderrors "errors"
	"flag"
	"fmt"
	"net/http"

	"Lookbook/app/api/storefront/internal/config"
	"Lookbook/app/api/storefront/internal/handler"
	"Lookbook/app/api/storefront/internal/svc"
	"Lookbook/app/common/consts/errno"
	"Lookbook/app/common/response"
	"Lookbook/app/services/storefront"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/x/errors"
)

var configFile = flag.String("f", "etc/storefront.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	defer ctx.Close()

	if err := ctx.Restore(context.Background()); err != nil {
		logx.Errorw("restore snapshots failed", logx.Field("err", err))
	}

	stop := storefront.StartEtaWorker(c.Store.Asynq, ctx.Store)
	defer stop()

	httpx.SetErrorHandlerCtx(errorHandler)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}

// errorHandler renders coded errors as a regular envelope; anything else,
// such as a request that failed to parse, is a bad request.
func errorHandler(_ context.Context, err error) (int, any) {
	var cm *errors.CodeMsg
	if stderrors.As(err, &cm) {
		return http.StatusOK, response.NewResponse(cm.Code, cm.Msg)
	}
	return http.StatusBadRequest, response.NewResponse(errno.InvalidParam, err.Error())
}
