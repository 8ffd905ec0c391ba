package util

import (
	"os"
	"regexp"
	"strconv"
)

// matches the ordinal suffix given to statefulset pods, e.g. ingress-errors-3
var r = regexp.MustCompile(`-([0-9]+)$`)

// PodIndex returns the ordinal at the end of the hostname, or 0 when the
// hostname has none, as is the case for deployment pods.
func PodIndex() (int64, error) {
	host, err := os.Hostname()
	if err != nil {
		return 0, err
	}
	return hostIndex(host)
}

func hostIndex(host string) (int64, error) {
	matches := r.FindStringSubmatch(host)
	if matches == nil {
		return 0, nil
	}
	return strconv.ParseInt(matches[1], 10, 64)
}
