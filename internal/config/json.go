package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors the on-disk config.json shape: one flat object, keys
// as the operator writes them. It is mapped into the nested
// [StructuredConfig] after decoding.
//
// Note: decoding is strict encoding/json — a trailing comma after the last
// key is a syntax error, not tolerated input.
type jsonConfig struct {
	Host           string   `json:"host"`
	Port           int      `json:"port"`
	Username       string   `json:"username"`
	Password       string   `json:"password"`
	ShareName      string   `json:"share_name"`
	Filename       string   `json:"filename"`
	RequestTimeout Duration `json:"request_timeout,omitempty"`
	InsecureTLS    bool     `json:"insecure_tls,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		NAS: NAS{
			Host:      jsonCfg.Host,
			Port:      jsonCfg.Port,
			Username:  jsonCfg.Username,
			Password:  jsonCfg.Password,
			ShareName: jsonCfg.ShareName,
		},
		Backup: Backup{
			SourcePath: jsonCfg.Filename,
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(jsonCfg.RequestTimeout),
			InsecureTLS:    jsonCfg.InsecureTLS,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
