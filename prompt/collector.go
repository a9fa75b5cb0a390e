package prompt

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
)

const (
	greeting        = "Hello! Let's explore some US bikeshare data!"
	cityQuestion    = "Would you like to analyze bike share data for Chicago, New York City, or Washington? "
	monthQuestion   = "Which month would you like to analyze? Type \"all\" for all months or type any month between january to june. "
	dayQuestion     = "Which day of the week would you like to analyze? Type \"all\" for all days or Type a day of the week. "
	restartQuestion = "\nWould you like to restart? Enter yes or no.\n"
	restartAnswer   = "yes"
)

// Collector asks the user for the filters to apply to the bikeshare data
type Collector struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewCollector(in io.Reader, out io.Writer) *Collector {
	return &Collector{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// CollectFilters asks for a city, a month and a day. Each question is repeated until the answer is valid.
// The only error returned is the one of the input, e.g. io.EOF if it was closed
func (c *Collector) CollectFilters() (filter.Selection, error) {
	c.println(greeting)

	city, err := askUntilValid(c, cityQuestion, "Invalid city. Please try again.", filter.ParseCity)
	if err != nil {
		return filter.Selection{}, err
	}

	month, err := askUntilValid(c, monthQuestion, "Invalid month. Please try again.", filter.ParseMonth)
	if err != nil {
		return filter.Selection{}, err
	}

	day, err := askUntilValid(c, dayQuestion, "Invalid day. Please try again.", filter.ParseDay)
	if err != nil {
		return filter.Selection{}, err
	}

	c.println(strings.Repeat("-", 40))
	return filter.NewSelection(city, month, day), nil
}

// AskRestart returns true only if the user answers yes, ignoring case
func (c *Collector) AskRestart() (bool, error) {
	answer, err := c.readAnswer(restartQuestion)
	if err != nil {
		return false, err
	}
	return utils.NormalizeAnswer(answer) == restartAnswer, nil
}

func askUntilValid[T any](c *Collector, question string, invalidMessage string, parse func(string) (T, error)) (T, error) {
	for {
		answer, err := c.readAnswer(question)
		if err != nil {
			var zero T
			return zero, err
		}

		value, err := parse(answer)
		if err == nil {
			return value, nil
		}

		log.Debugf("[component: prompt][method: askUntilValid] %s", err.Error())
		c.println(invalidMessage)
	}
}

// readAnswer prints the question and reads a line. The last line of the input is accepted even without line break
func (c *Collector) readAnswer(question string) (string, error) {
	_, _ = fmt.Fprint(c.out, question)

	answer, err := c.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && answer != "" {
			return answer, nil
		}
		return "", fmt.Errorf("error reading answer: %w", err)
	}
	return answer, nil
}

func (c *Collector) println(message string) {
	_, _ = fmt.Fprintln(c.out, message)
}
