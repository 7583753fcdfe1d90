package netutils

import (
	"context"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listenerPort Возвращает адрес и порт локального TCP-слушателя.
func listenerPort(t *testing.T) (net.Listener, string, int) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := ln.Addr().(*net.TCPAddr)

	return ln, addr.IP.String(), addr.Port
}

// TestCheckTCPOpenPort Проверяет успешное TCP-соединение с открытым портом.
func TestCheckTCPOpenPort(t *testing.T) {
	ln, host, port := listenerPort(t)
	defer ln.Close()

	nc := NewNetworkChecker()

	ok := nc.CheckTCP(context.Background(), host, strconv.Itoa(port), time.Second)

	assert.True(t, ok)
}

// TestCheckTCPClosedPort Проверяет неудачу на закрытом порту.
func TestCheckTCPClosedPort(t *testing.T) {
	ln, host, port := listenerPort(t)
	// закрываем слушатель, порт гарантированно свободен
	require.NoError(t, ln.Close())

	nc := NewNetworkChecker()

	ok := nc.CheckTCP(context.Background(), host, strconv.Itoa(port), 200*time.Millisecond)

	assert.False(t, ok)
}

// TestIsReachableViaTCP Проверяет что доступность подтверждается уже по TCP,
// без перехода к ICMP.
func TestIsReachableViaTCP(t *testing.T) {
	ln, host, port := listenerPort(t)
	defer ln.Close()

	nc := NewNetworkChecker()

	ok := nc.IsReachable(context.Background(), host, port, time.Second)

	assert.True(t, ok)
}

// TestCheckerImplementsInterface Проверяет что NetworkChecker реализует интерфейс.
func TestCheckerImplementsInterface(t *testing.T) {
	var _ Checker = (*NetworkChecker)(nil)

	assert.NotNil(t, NewNetworkChecker())
}
