package postgre

import (
	"testing"

	"insight-srv/config"

	"github.com/stretchr/testify/assert"
)

func TestBuildDSN(t *testing.T) {
	tcs := map[string]struct {
		cfg  config.PostgresConfig
		want string
	}{
		"explicit": {
			cfg:  config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "d", SSLMode: "require", Schema: "insight"},
			want: "host=db port=5432 user=u password=p dbname=d sslmode=require search_path=insight",
		},
		"defaults": {
			cfg:  config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "d"},
			want: "host=db port=5432 user=u password=p dbname=d sslmode=disable search_path=public",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, buildDSN(tc.cfg))
		})
	}
}
