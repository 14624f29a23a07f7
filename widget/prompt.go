package widget

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"globe-weather/models"
)

// Prompt is a line-oriented terminal front end for a Controller.
//
// Each line replaces the input text and lists suggestions. ":N" picks
// suggestion N, an empty line submits the current input and ":q" quits.
type Prompt struct {
	controller *Controller
	out        io.Writer
}

// NewPrompt creates a prompt writing to out
func NewPrompt(controller *Controller, out io.Writer) *Prompt {
	return &Prompt{controller: controller, out: out}
}

// Run activates the controller and then processes lines from in until EOF or ":q"
func (p *Prompt) Run(ctx context.Context, in io.Reader) error {
	p.report(p.controller.Activate(ctx))

	scanner := bufio.NewScanner(in)
	p.printf("Search city> ")
	for scanner.Scan() {
		line := scanner.Text()
		if line == ":q" {
			return nil
		}
		p.handle(ctx, line)
		p.printf("Search city> ")
	}
	return scanner.Err()
}

func (p *Prompt) handle(ctx context.Context, line string) {
	switch {
	case line == "":
		p.report(p.controller.Submit(ctx))
	case strings.HasPrefix(line, ":"):
		n, err := strconv.Atoi(line[1:])
		suggestions := p.controller.State().Suggestions
		if err != nil || n < 1 || n > len(suggestions) {
			p.printf("No suggestion %q\n", line[1:])
			return
		}
		p.report(p.controller.SelectSuggestion(ctx, suggestions[n-1]))
	default:
		for i, s := range p.controller.OnInputChange(line) {
			p.printf("  %d. %s\n", i+1, s)
		}
	}
}

func (p *Prompt) report(result models.WeatherResult, err error) {
	if err != nil {
		p.printf("%s\n", UserMessage(err))
		return
	}
	p.printf("\n%s\n\n", NewWeatherView(result))
}

func (p *Prompt) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}
