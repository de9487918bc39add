package lookgen

import "time"

type LookConf struct {
	MaxItems     int             `json:",default=4"`
	RevealDelay  time.Duration   `json:",optional"`
	CoverTimeout time.Duration   `json:",default=3s"`
	ImageSearch  ImageSearchConf `json:",optional"`
	ChatModel    ModelConf       `json:",optional"`
}

type ImageSearchConf struct {
	Endpoint     string `json:",optional"`
	APIKey       string `json:",optional"`
	DefaultImage string `json:",optional"`
}

// ModelConf configures the optional chat model used to enrich prompt analysis.
// An empty Model disables it.
type ModelConf struct {
	BaseUrl string `json:",optional"`
	APIKey  string `json:",optional"`
	Model   string `json:",optional"`
}
