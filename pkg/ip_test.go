package pkg

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPIsLocal(t *testing.T) {
	assert.True(t, IPIsLocal("127.0.0.1:8080"))
	assert.True(t, IPIsLocal("172.17.0.1:34566"))
	assert.False(t, IPIsLocal("8.8.8.8:443"))
	assert.False(t, IPIsLocal("192.168.1.100:8080"))
}

func TestReadUserIP(t *testing.T) {
	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)

	req.Header.Set("X-Real-Ip", "8.8.8.8")
	ip, err := ReadUserIP(req)
	require.NoError(t, err)
	assert.Equal(t, "8.8.8.8", ip)

	req.Header.Del("X-Real-Ip")
	req.Header.Set("X-Forwarded-For", "9.9.9.9")
	ip, err = ReadUserIP(req)
	require.NoError(t, err)
	assert.Equal(t, "9.9.9.9", ip)

	req.Header.Del("X-Forwarded-For")
	req.RemoteAddr = "127.0.0.1:56789"
	ip, err = ReadUserIP(req)
	require.NoError(t, err)
	assert.Equal(t, "localhost", ip)

	req.RemoteAddr = "not-an-ip"
	_, err = ReadUserIP(req)
	assert.Error(t, err)
}
