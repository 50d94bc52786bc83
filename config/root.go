package config

import "gopkg.in/yaml.v3"

// Root is the on-disk config file (~/.kvctl.yaml by default). Accessors are
// nil-safe so a missing config file reads as empty values.
type Root struct {
	AccountIDVal string `json:"account_id" yaml:"account_id"`
	ApiTokenVal  string `json:"api_token" yaml:"api_token"`
	EmailVal     string `json:"email" yaml:"email"`
	ApiKeyVal    string `json:"api_key" yaml:"api_key"`
	BaseUrlVal   string `json:"base_url" yaml:"base_url"`
}

func UnmarshallYamlRootString(data string) (*Root, error) {
	return UnmarshallYamlRoot([]byte(data))
}

func UnmarshallYamlRoot(data []byte) (*Root, error) {
	var root Root
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}

	return &root, nil
}

func (r *Root) AccountID() string {
	if r == nil {
		return ""
	}

	return r.AccountIDVal
}

func (r *Root) ApiToken() string {
	if r == nil {
		return ""
	}

	return r.ApiTokenVal
}

func (r *Root) Email() string {
	if r == nil {
		return ""
	}

	return r.EmailVal
}

func (r *Root) ApiKey() string {
	if r == nil {
		return ""
	}

	return r.ApiKeyVal
}

func (r *Root) BaseUrl() string {
	if r == nil {
		return ""
	}

	return r.BaseUrlVal
}
