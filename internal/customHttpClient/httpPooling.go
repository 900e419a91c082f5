package customHttpClient

import (
	"net"
	"net/http"
	"sync"

	"github.com/akolanti/StudyAPI/internal/config"
)

var (
	transportOnce   sync.Once
	customTransport *http.Transport
)

// Transport is the pooled transport shared by the object store clients so uploads
// and worker downloads reuse connections to the same host.
func Transport() *http.Transport {
	transportOnce.Do(func() {
		customTransport = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   config.DialTimeout,
				KeepAlive: config.DialKeepAlive,
			}).DialContext,
			MaxIdleConns:          config.MaxIdleConns,
			MaxIdleConnsPerHost:   config.MaxIdleConnsPerHost,
			IdleConnTimeout:       config.IdleConnTimeout,
			ResponseHeaderTimeout: config.ResponseHeaderTimeout,
		}
	})
	return customTransport
}
