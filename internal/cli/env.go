package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/andreagrandi/icetool/internal/config"
	"github.com/andreagrandi/icetool/internal/console"
	"github.com/andreagrandi/icetool/internal/logx"
	"github.com/andreagrandi/icetool/internal/script"
	"github.com/andreagrandi/icetool/internal/session"
	"github.com/andreagrandi/icetool/internal/shell"
)

var (
	loadScripts = script.LoadWithOverrides
	openLogFile = logx.Open
)

// shellEnv is a created shell together with the config, log file and
// session it was built from.
type shellEnv struct {
	cfg     *config.Config
	shell   *shell.Shell
	log     zerolog.Logger
	logFile *os.File
	store   *session.Store
	session *session.Session
}

func openShellEnv() (*shellEnv, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level, err := logx.ParseLevel(firstNonEmpty(logLevelFlag, cfg.LogLevel()))
	if err != nil {
		return nil, err
	}

	rt := &shellEnv{
		cfg:     cfg,
		store:   session.NewStore(cfg.SessionFile()),
		session: &session.Session{},
	}

	buf := console.NewBuffer(console.DefaultCapacity)

	var fileWriter io.Writer
	file, logErr := openLogFile(cfg.LogFile())
	if logErr == nil {
		rt.logFile = file
		fileWriter = file
	}

	rt.log = logx.Tee(fileWriter, buf, level)
	if logErr != nil {
		rt.log.Warn().Err(logErr).Msg("logging to the console only")
	}

	scripts, err := loadScripts(firstNonEmpty(scriptsDirFlag, cfg.ScriptsDir()))
	if err != nil {
		rt.close()
		return nil, fmt.Errorf("load scripts: %w", err)
	}

	rt.log.Debug().Int("count", len(scripts)).Msg("scripts loaded")

	sh, err := shell.New(script.NewLibrary(scripts), buf, rt.log)
	if err != nil {
		rt.close()
		return nil, err
	}
	rt.shell = sh

	if cfg.IsFeatureEnabled("session") {
		sess, err := rt.store.Load()
		if err != nil {
			rt.log.Warn().Err(err).Str("path", rt.store.Path()).Msg("starting with an empty session")
		} else {
			rt.session = sess
		}
	}

	if err := sh.Create(rt.session); err != nil {
		rt.close()
		return nil, err
	}

	return rt, nil
}

// save writes the active tab and list positions back to the session file.
func (r *shellEnv) save() error {
	if !r.cfg.IsFeatureEnabled("session") {
		return nil
	}

	r.shell.Snapshot(r.session)
	if err := r.store.Save(r.session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	return nil
}

func (r *shellEnv) close() {
	if r.logFile != nil {
		_ = r.logFile.Close()
		r.logFile = nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}

	return ""
}
