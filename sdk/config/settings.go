// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/ini.v1"
)

const iniName = ".mdf-connect.ini"

// settings holds all logical keys. Tags:
// - vkey: Viper key
// - env: canonical env name (UPPER_SNAKE). If empty, derived from vkey
// - persist: "true" to write the key into the INI
type settings struct {
	ServiceInstance   string `vkey:"service_instance"    env:"MDF_SERVICE_INSTANCE"    persist:"true"`
	BaseURL           string `vkey:"base_url"            env:"MDF_BASE_URL"            persist:"true"`
	AccessToken       string `vkey:"access_token"        env:"MDF_ACCESS_TOKEN"        persist:"true"  secret:"true"`
	StagingAccessKey  string `vkey:"staging_access_key"  env:"MDF_STAGING_ACCESS_KEY"  persist:"true"  secret:"true"`
	StagingSecretKey  string `vkey:"staging_secret_key"  env:"MDF_STAGING_SECRET_KEY"  persist:"true"  secret:"true"`
	StagingToken      string `vkey:"staging_token"       env:"MDF_STAGING_TOKEN"       persist:"true"  secret:"true"`
	StagingRegion     string `vkey:"staging_region"      env:"MDF_STAGING_REGION"      persist:"true"`
	StagingEndpoint   string `vkey:"staging_endpoint"    env:"MDF_STAGING_ENDPOINT"    persist:"true"`
	StagingBucket     string `vkey:"staging_bucket"      env:"MDF_STAGING_BUCKET"      persist:"true"`
	CurrentEnvironment string `vkey:"current_environment" env:"MDF_CURRENT_ENVIRONMENT" persist:"false"`
}

func iniPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return home + string(os.PathSeparator) + iniName
}

// bindEnvFromStruct binds every settings field to its environment variable.
func bindEnvFromStruct(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	rt := reflect.TypeOf(settings{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		key := f.Tag.Get("vkey")
		if key == "" {
			continue
		}
		env := f.Tag.Get("env")
		if env == "" {
			env = strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		}
		_ = v.BindEnv(key, env)
	}
}

// loadIniSection merges [DEFAULT] and the selected section into viper.
func loadIniSection(v *viper.Viper, cfg *ini.File, env string) {
	merged := make(map[string]string)
	for _, k := range cfg.Section("DEFAULT").Keys() {
		merged[k.Name()] = k.Value()
	}
	if env != "" && cfg.HasSection(env) {
		for _, k := range cfg.Section(env).Keys() {
			merged[k.Name()] = k.Value()
		}
	}
	for k, val := range merged {
		if !v.IsSet(k) || v.GetString(k) == "" {
			v.SetDefault(k, val)
		}
	}
}

// FromEnvironment assembles a Config from environment variables and, when
// present, the persisted INI file. An explicit environment name selects an
// INI section; empty falls back to DEFAULT.current_environment.
func FromEnvironment(optionalEnv ...string) Config {
	v := viper.New()
	bindEnvFromStruct(v)

	env := ""
	if len(optionalEnv) > 0 {
		env = optionalEnv[0]
	}
	if cfg, err := ini.Load(iniPath()); err == nil {
		if env == "" {
			env = cfg.Section("DEFAULT").Key("current_environment").String()
		}
		loadIniSection(v, cfg, env)
	}

	return Config{
		Core: CoreConfig{
			ServiceInstance: v.GetString("service_instance"),
			BaseURL:         v.GetString("base_url"),
			AccessToken:     v.GetString("access_token"),
		},
		Staging: StagingConfig{
			AccessKey:   v.GetString("staging_access_key"),
			SecretKey:   v.GetString("staging_secret_key"),
			AccessToken: v.GetString("staging_token"),
			Region:      v.GetString("staging_region"),
			EndpointURL: v.GetString("staging_endpoint"),
			Bucket:      v.GetString("staging_bucket"),
		},
	}
}

// WriteEnvironment persists the current viper-visible values of all
// persist-tagged keys into the named INI section.
func WriteEnvironment(envName string) error {
	v := viper.New()
	bindEnvFromStruct(v)

	cfg, err := ini.Load(iniPath())
	if err != nil {
		cfg = ini.Empty()
	}
	cfg.Section("DEFAULT").Key("current_environment").SetValue(envName)
	sec := cfg.Section(envName)

	rt := reflect.TypeOf(settings{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.Tag.Get("persist") != "true" {
			continue
		}
		key := f.Tag.Get("vkey")
		if key == "" {
			continue
		}
		if val := v.GetString(key); val != "" {
			sec.Key(key).SetValue(val)
		}
	}

	if err := cfg.SaveTo(iniPath()); err != nil {
		return fmt.Errorf("write ini failed: %w", err)
	}
	return nil
}
