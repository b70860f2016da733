package request

import (
	"net/http"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

// loggingDoer logs each request at debug level before delegating.
type loggingDoer struct {
	next  Doer
	log   zerolog.Logger
	clock clockwork.Clock
}

// LoggingDoer wraps next so every request and its outcome is logged. URLs are
// redacted. Because it wraps the Doer, it composes with the pipeline without
// changes to BuildURL or Normalize. A nil clock means the real clock.
func LoggingDoer(next Doer, log zerolog.Logger, clock clockwork.Clock) Doer {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &loggingDoer{next: next, log: log, clock: clock}
}

func (d *loggingDoer) Do(req *http.Request) (*http.Response, error) {
	start := d.clock.Now()
	target := RedactURL(req.URL.String())

	resp, err := d.next.Do(req)
	elapsed := d.clock.Since(start)

	if err != nil {
		d.log.Debug().
			Str("method", req.Method).
			Str("url", target).
			Dur("elapsed", elapsed).
			Err(redactError(err)).
			Msg("request failed")
		return nil, err
	}

	d.log.Debug().
		Str("method", req.Method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("request completed")
	return resp, nil
}
