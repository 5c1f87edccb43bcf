package providers

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// 三家上游各一个 host，每个 host 保留的空闲连接数
const idleConnsPerUpstream = 32

// 按响应头超时复用 http.Client，同一超时的适配器共享连接池
var upstreamClients sync.Map // time.Duration -> *http.Client

var upstreamDialer = &net.Dialer{
	Timeout:   30 * time.Second,
	KeepAlive: 30 * time.Second,
}

// GetClient 返回共享的上游 client。responseHeaderTimeout 为 0 表示不限制，
// 此时只受调用方 ctx 约束
func GetClient(responseHeaderTimeout time.Duration) *http.Client {
	if responseHeaderTimeout < 0 {
		responseHeaderTimeout = 0
	}
	if client, ok := upstreamClients.Load(responseHeaderTimeout); ok {
		return client.(*http.Client)
	}
	client, _ := upstreamClients.LoadOrStore(responseHeaderTimeout, &http.Client{
		Transport: newUpstreamTransport(responseHeaderTimeout),
	})
	return client.(*http.Client)
}

func newUpstreamTransport(responseHeaderTimeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           upstreamDialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          idleConnsPerUpstream * 3,
		MaxIdleConnsPerHost:   idleConnsPerUpstream,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: responseHeaderTimeout,
	}
}
