package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN (PostgreSQL on the server, SQLite path on the device)
//	-c/-config json file path with configs
//	-token-sign-key device credential verification key
//	-token-issuer expected credential issuer
//	-request-timeout inbound request timeout (e.g., "30s", "1m")
//	-base-url reconciliation server base URL (device)
//	-token opaque device bearer credential (device)
//	-adapter-timeout outbound request timeout (device)
//	-sync-interval automatic sync period (device)
//	-batch-cap max records per sync batch (device)
//	-cache-max-age locality cache staleness threshold (device)
//	-history-limit local history log bound (device)
//	-operator enable visit timestamp overrides (device)
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var requestTimeout time.Duration
	var baseURL string
	var token string
	var adapterTimeout time.Duration
	var syncInterval time.Duration
	var batchCap int
	var cacheMaxAge time.Duration
	var historyLimit int
	var operatorMode bool
	var usageQueueSize int

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Device credential verification key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Expected credential issuer")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Inbound request timeout (e.g., 30s, 1m)")
	flag.StringVar(&baseURL, "base-url", "", "Reconciliation server base URL")
	flag.StringVar(&token, "token", "", "Device bearer credential")
	flag.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Outbound request timeout (e.g., 15s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Automatic sync period (e.g., 30s)")
	flag.IntVar(&batchCap, "batch-cap", 0, "Max records per sync batch (0 = no cap)")
	flag.DurationVar(&cacheMaxAge, "cache-max-age", 0, "Locality cache staleness threshold (e.g., 168h)")
	flag.IntVar(&historyLimit, "history-limit", 0, "Local history log bound")
	flag.BoolVar(&operatorMode, "operator", false, "Enable visit timestamp overrides")
	flag.IntVar(&usageQueueSize, "usage-queue-size", 0, "Aggregate maintainer job queue size")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			Token:          token,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			UsageQueueSize: usageQueueSize,
		},
		Device: Device{
			SyncInterval: syncInterval,
			BatchCap:     batchCap,
			CacheMaxAge:  cacheMaxAge,
			HistoryLimit: historyLimit,
			OperatorMode: operatorMode,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress, or the
// empty string when neither host nor port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the
// NetAddress. It validates the port range and checks IP correctness unless
// the host is "localhost".
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
