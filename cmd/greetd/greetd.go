package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cprates/lgreet/cmd/greetd/internal/api"
	"github.com/cprates/lgreet/common"
	"github.com/cprates/lgreet/pkg/greeting"
	"github.com/cprates/lgreet/pkg/laction"
	"github.com/cprates/lgreet/pkg/manifest"
)

func init() {

	setDefaults(viper.GetViper())

	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/lgreet")
	viper.SetEnvPrefix("lgreet")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); err != nil && !notFound {
		log.Fatalf("fatal error config file: %s", err)
	}

	log.StandardLogger().SetNoLock()
	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	log.SetReportCaller(true)
	log.SetFormatter(
		&log.TextFormatter{
			DisableLevelTruncation: true,
			FullTimestamp:          true,
			CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
				_, fileName := filepath.Split(frame.File)
				file = " " + fileName + ":" + strconv.Itoa(frame.Line) + " #"
				return
			},
		},
	)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("service.addr", ":8080")
	v.SetDefault("service.namespace", "guest")
	v.SetDefault("action.name", "hello")
	v.SetDefault("action.key", greeting.KeyName)
	v.SetDefault("manifest", "")
}

// deploy creates every action declared in the manifest at path.
func deploy(actions *laction.API, path string) error {

	m, err := manifest.LoadFile(path)
	if err != nil {
		return err
	}

	ctx := context.WithValue(context.Background(), common.ReqIDKey{}, "deploy")
	for _, a := range m.Actions() {
		res := actions.CreateAction(
			ctx,
			laction.ReqCreateAction{Name: a.QualifiedName(), Key: a.Key, Version: a.Version},
		)
		if res.Err != nil {
			return res.Err
		}
		log.Printf("Deployed action %q", a.QualifiedName())
	}

	return nil
}

func main() {

	log.Println("Starting LGreet...")

	addr := viper.GetString("service.addr")
	namespace := viper.GetString("service.namespace")

	actions := laction.Launch(
		namespace, os.Stdout, log.WithField("component", "laction"),
	)
	defer actions.Shutdown()

	if path := viper.GetString("manifest"); path != "" {
		if err := deploy(actions, path); err != nil {
			log.Fatalf("Failed to deploy manifest %q: %s", path, err)
		}
	}

	s := newServer(actions)
	api.InstallActionProxy(
		s.router,
		s.actions,
		viper.GetString("action.name"),
		viper.GetString("action.key"),
		os.Stdout,
		os.Stderr,
	)
	api.InstallActions(s.router, s.actions)

	log.Println("Listening on", addr)
	log.Fatal(http.ListenAndServe(addr, s.router))
}
