package cfg

import (
	"net"
	"strconv"
)

const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8080
)

// Cfg is built once at startup and passed to the server. It is never mutated
// after Load returns.
type Cfg struct {
	Host    string
	Port    int
	Debug   bool
	Version string
}

func (c Cfg) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

type fileCfg struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}
