package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Storage struct {
		DB struct {
			Driver            string   `json:"driver"`
			Host              string   `json:"host"`
			Port              int      `json:"port"`
			User              string   `json:"user"`
			AuthKey           string   `json:"auth_key"`
			Name              string   `json:"name"`
			SSLMode           string   `json:"ssl_mode"`
			Discovery         bool     `json:"discovery"`
			Buffer            int      `json:"buffer"`
			Max               int      `json:"max"`
			SQLitePath        string   `json:"sqlite_path"`
			IndexWaitTimeout  Duration `json:"index_wait_timeout"`
			IndexWaitInterval Duration `json:"index_wait_interval"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		AllowedOrigins []string `json:"allowed_origins"`
		StrictNotFound bool     `json:"strict_not_found"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodyBytes   int64    `json:"max_body_bytes"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	db := jsonCfg.Storage.DB
	cfg := &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver:            db.Driver,
				Host:              db.Host,
				Port:              db.Port,
				User:              db.User,
				AuthKey:           db.AuthKey,
				Name:              db.Name,
				SSLMode:           db.SSLMode,
				Discovery:         db.Discovery,
				IdleConns:         db.Buffer,
				MaxConns:          db.Max,
				SQLitePath:        db.SQLitePath,
				IndexWaitTimeout:  time.Duration(db.IndexWaitTimeout),
				IndexWaitInterval: time.Duration(db.IndexWaitInterval),
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
			StrictNotFound: jsonCfg.Server.StrictNotFound,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodyBytes:   jsonCfg.Server.MaxBodyBytes,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		JSONFilePath: "",
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
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
