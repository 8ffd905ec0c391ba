package config

import (
	"net"
	"net/netip"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that also knows the listen_addr tag.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("listen_addr", isListenAddr(validate))
	return validate
}

// isListenAddr accepts host:port where the host is empty, an IP address
// (IPv6 in brackets, zones allowed) or an RFC 1123 hostname, and the port is
// 1-65535.
func isListenAddr(validate *validator.Validate) validator.Func {
	return func(fl validator.FieldLevel) bool {
		host, port, err := net.SplitHostPort(fl.Field().String())
		if err != nil {
			return false
		}
		if n, err := strconv.ParseUint(port, 10, 16); err != nil || n == 0 {
			return false
		}
		if host == "" {
			return true
		}
		if _, err := netip.ParseAddr(host); err == nil {
			return true
		}
		return validate.Var(host, "hostname_rfc1123") == nil
	}
}
