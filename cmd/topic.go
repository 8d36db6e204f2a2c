package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankbook/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "print documentation topics" }
func (*topicCmd) Usage() string {
	return `bkb topic [<name> ...]

  Prints the named documentation topics, or the list of topics when called
  without argument. Use "*" for all topics.
`
}

func (*topicCmd) SetFlags(_ *flag.FlagSet) {}

func (p *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(doc)
	return subcommands.ExitSuccess
}
