package config

import (
	"errors"
	"flag"
	"net"
	"sort"
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

// FeatureFlags is a flag.Value collecting "key:bool" pairs,
// e.g. -feature-flags publishable_api_keys:true,sales_channels:false.
type FeatureFlags map[string]bool

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-query-schema query schema YAML file path
//	-feature-flags feature flag overrides ("key:true,key2:false")
//	-redis redis address host:port
//	-redis-ttl publishable key scope cache TTL
//	-search-address search engine base URL
//	-search-api-key search engine API key
//	-search-index search engine products index
//	-search-timeout search engine request timeout
//	-index-interval search index synchronization interval
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var querySchemaFile string
	featureFlags := FeatureFlags{}
	var redisAddress string
	var redisTTL time.Duration
	var searchAddress string
	var searchAPIKey string
	var searchIndex string
	var searchTimeout time.Duration
	var indexInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&querySchemaFile, "query-schema", "", "Query schema YAML file path")
	flag.Var(&featureFlags, "feature-flags", "Feature flag overrides (key:true,key2:false)")
	flag.StringVar(&redisAddress, "redis", "", "Redis address host:port")
	flag.DurationVar(&redisTTL, "redis-ttl", 0, "Publishable key scope cache TTL")
	flag.StringVar(&searchAddress, "search-address", "", "Search engine base URL")
	flag.StringVar(&searchAPIKey, "search-api-key", "", "Search engine API key")
	flag.StringVar(&searchIndex, "search-index", "", "Search engine products index")
	flag.DurationVar(&searchTimeout, "search-timeout", 0, "Search engine request timeout")
	flag.DurationVar(&indexInterval, "index-interval", 0, "Search index synchronization interval")

	flag.Parse()

	var flagsMap map[string]bool
	if len(featureFlags) > 0 {
		flagsMap = featureFlags
	}

	return &StructuredConfig{
		App: App{
			FeatureFlags: flagsMap,
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			QuerySchemaFile: querySchemaFile,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Redis: Redis{
				Address: redisAddress,
				TTL:     redisTTL,
			},
		},
		Search: Search{
			Address:        searchAddress,
			APIKey:         searchAPIKey,
			Index:          searchIndex,
			RequestTimeout: searchTimeout,
		},
		Workers: Workers{
			IndexInterval: indexInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
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

// String renders the pairs sorted by key.
func (f *FeatureFlags) String() string {
	if f == nil || len(*f) == 0 {
		return ""
	}

	keys := make([]string, 0, len(*f))
	for k := range *f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+":"+strconv.FormatBool((*f)[k]))
	}
	return strings.Join(pairs, ",")
}

// Set parses comma-separated "key:bool" pairs. A bare key means true.
// Repeated -feature-flags flags accumulate.
func (f *FeatureFlags) Set(s string) error {
	if *f == nil {
		*f = FeatureFlags{}
	}

	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		key, rawValue, hasValue := strings.Cut(pair, ":")
		key = strings.TrimSpace(key)
		if key == "" {
			return errors.New("feature flag name is empty")
		}

		enabled := true
		if hasValue {
			v, err := strconv.ParseBool(strings.TrimSpace(rawValue))
			if err != nil {
				return errors.New("feature flag " + key + " has a non-boolean value")
			}
			enabled = v
		}

		(*f)[key] = enabled
	}

	return nil
}
