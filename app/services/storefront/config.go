package storefront

import "Lookbook/app/services/storefront/model"

type StoreConf struct {
	// BuyerId is used when a request carries no buyer.
	BuyerId           string               `json:",default=guest"`
	Locale            string               `json:",default=en,options=en|ru"`
	StrictTransitions bool                 `json:",optional"`
	ServiceFee        model.ServiceFeeConf `json:",optional"`
	Kafka             KafkaConf            `json:",optional"`
	Asynq             AsynqConf            `json:",optional"`
}

type KafkaConf struct {
	Brokers []string `json:",optional"`
}

// AsynqConf enables delayed ETA checks when Addr is set.
type AsynqConf struct {
	Addr        string         `json:",optional"`
	Concurrency int            `json:",default=5"`
	Queues      map[string]int `json:",optional"`
}
