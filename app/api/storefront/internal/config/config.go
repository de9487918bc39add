package config

import (
	"Lookbook/app/services/lookgen"
	"Lookbook/app/services/storefront"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	CatalogFile string

	// RedisConf enables redis snapshots when Host is set; otherwise state is
	// kept in memory only.
	RedisConf redis.RedisConf `json:",optional"`

	Look  lookgen.LookConf
	Store storefront.StoreConf

	LogConf logx.LogConf
}
