package session

import (
	"bikeshare/dataset"
	"bikeshare/domain/entities/filter"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

const (
	sessionStr     = "session"
	noTripsMessage = "\nNo trips match the selected filters."
)

// FilterCollector asks the user which data to analyze
type FilterCollector interface {
	CollectFilters() (filter.Selection, error)
	AskRestart() (bool, error)
}

// TripsLoader returns the trips that match a selection
type TripsLoader interface {
	Load(selection filter.Selection) (*dataset.Table, error)
}

// StatsReporter prints the stats of a table of trips
type StatsReporter interface {
	ReportAll(table *dataset.Table) error
}

// Session runs the explore loop: ask for filters, load the trips, print the stats and ask to restart
type Session struct {
	collector FilterCollector
	loader    TripsLoader
	reporter  StatsReporter
	out       io.Writer
}

func NewSession(collector FilterCollector, loader TripsLoader, reporter StatsReporter, out io.Writer) *Session {
	return &Session{
		collector: collector,
		loader:    loader,
		reporter:  reporter,
		out:       out,
	}
}

func (s *Session) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: %s][method: %s][status: ERROR] %s: %s", sessionStr, method, message, err.Error())
	}
	return fmt.Sprintf("[component: %s][method: %s][status: OK] %s", sessionStr, method, message)
}

// Run repeats the explore loop until the user does not want to restart. A closed input ends the session
// without error, any other error stops the loop and is returned
func (s *Session) Run() error {
	iteration := 0
	for {
		iteration += 1

		selection, err := s.collector.CollectFilters()
		if err != nil {
			return s.handleInputError("CollectFilters", err)
		}
		log.Debug(s.getLogMessage("Run", fmt.Sprintf("iteration %v: %s", iteration, selection), nil))

		if err = s.explore(selection); err != nil {
			return err
		}

		restart, err := s.collector.AskRestart()
		if err != nil {
			return s.handleInputError("AskRestart", err)
		}

		if !restart {
			log.Debug(s.getLogMessage("Run", fmt.Sprintf("finished after %v iterations", iteration), nil))
			return nil
		}
	}
}

// explore loads the trips of the selection and prints their stats. The table is discarded afterwards
func (s *Session) explore(selection filter.Selection) error {
	table, err := s.loader.Load(selection)
	if err != nil {
		log.Error(s.getLogMessage("explore", "error loading trips", err))
		return err
	}

	if table.Nrow() == 0 {
		_, _ = fmt.Fprintln(s.out, noTripsMessage)
		return nil
	}

	return s.reporter.ReportAll(table)
}

func (s *Session) handleInputError(method string, err error) error {
	if errors.Is(err, io.EOF) {
		log.Info(s.getLogMessage(method, "input closed, finishing session", nil))
		return nil
	}
	log.Error(s.getLogMessage(method, "error reading input", err))
	return err
}
