package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-allowed-origins comma-separated CORS origins
//	-strict-not-found answer 404 for missing todos
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-max-body-bytes request body limit
//	-driver storage driver (postgres, sqlite)
//	-db-host / -db-port / -db-user / -db-auth-key / -db-name / -db-ssl-mode
//	-db-discovery pick the read-write member of a host list
//	-db-buffer idle pool size
//	-db-max max pool size
//	-sqlite-path sqlite database file
//	-index-wait-timeout how long to wait for the created_at index
//	-s todo server URL used by the client
//	-client-timeout client request timeout
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var allowedOrigins string
	var strictNotFound bool
	var requestTimeout time.Duration
	var maxBodyBytes int64
	var db DB
	var adapter Adapter
	var jsonConfigPath string

	fs := flag.NewFlagSet("go-todo-keeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma-separated CORS origins")
	fs.BoolVar(&strictNotFound, "strict-not-found", false, "Answer 404 for missing todos")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Int64Var(&maxBodyBytes, "max-body-bytes", 0, "Request body limit in bytes")

	fs.StringVar(&db.Driver, "driver", "", "Storage driver (postgres, sqlite)")
	fs.StringVar(&db.Host, "db-host", "", "Database host(s)")
	fs.IntVar(&db.Port, "db-port", 0, "Database port")
	fs.StringVar(&db.User, "db-user", "", "Database user")
	fs.StringVar(&db.AuthKey, "db-auth-key", "", "Database password")
	fs.StringVar(&db.Name, "db-name", "", "Database name")
	fs.StringVar(&db.SSLMode, "db-ssl-mode", "", "Database sslmode")
	fs.BoolVar(&db.Discovery, "db-discovery", false, "Pick the read-write member of the host list")
	fs.IntVar(&db.IdleConns, "db-buffer", 0, "Idle connections kept in the pool")
	fs.IntVar(&db.MaxConns, "db-max", 0, "Max open connections")
	fs.StringVar(&db.SQLitePath, "sqlite-path", "", "SQLite database file")
	fs.DurationVar(&db.IndexWaitTimeout, "index-wait-timeout", 0, "Index readiness timeout")

	fs.StringVar(&adapter.HTTPAddress, "s", "", "Todo server URL")
	fs.DurationVar(&adapter.RequestTimeout, "client-timeout", 0, "Client request timeout")

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Storage: Storage{
			DB: db,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			AllowedOrigins: splitList(allowedOrigins),
			StrictNotFound: strictNotFound,
			RequestTimeout: requestTimeout,
			MaxBodyBytes:   maxBodyBytes,
		},
		Adapter:      adapter,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. It validates the port range, checks IP
// correctness unless host is "localhost", and returns an error if the format
// or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}

	return list
}
