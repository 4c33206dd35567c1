package middleware

import (
	"insight-srv/config"
	"insight-srv/pkg/encrypter"
	"insight-srv/pkg/log"
	"insight-srv/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	serviceKeys  map[string]string
	encrypter    encrypter.Encrypter
}

func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, internal config.InternalConfig, enc encrypter.Encrypter) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		serviceKeys:  internal.ServiceKeys,
		encrypter:    enc,
	}
}
