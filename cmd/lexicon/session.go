package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/iotaledger/hive.go/ierrors"

	"github.com/wordsmith/lexicon/datastructure/wordtree"
	"github.com/wordsmith/lexicon/dictionary"
	"github.com/wordsmith/lexicon/logger"
	"github.com/wordsmith/lexicon/spellcheck"
)

type action int

const (
	actionAdd action = iota + 1
	actionDelete
	actionMeaning
	actionList
	actionSpellCheck
	actionExit
)

var menuItems = []pterm.BulletListItem{
	{Level: 0, Text: "1: Add new word"},
	{Level: 0, Text: "2: Delete word"},
	{Level: 0, Text: "3: Get meaning"},
	{Level: 0, Text: "4: Dictionary list"},
	{Level: 0, Text: "5: Spell check a text file"},
	{Level: 0, Text: "6: Exit"},
}

// errExit is returned by the handlers when the user confirmed to leave the menu.
var errExit = ierrors.New("exit requested")

// session holds the state of one interactive menu run.
type session struct {
	dictionary *dictionary.Dictionary
	input      *bufio.Scanner
	output     io.Writer
	log        *logger.Logger
}

func newSession(dict *dictionary.Dictionary, input io.Reader, output io.Writer, log *logger.Logger) *session {
	return &session{
		dictionary: dict,
		input:      bufio.NewScanner(input),
		output:     output,
		log:        log.Named("Session"),
	}
}

// Run shows the menu and dispatches the selected actions until the user exits, the input ends or the context is
// canceled.
func (s *session) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		s.showMenu()

		line, ok := s.prompt("Please select an action [1..6]> ")
		if !ok {
			return nil
		}

		var result error
		if selected, err := strconv.Atoi(line); err == nil {
			s.log.Debugw("action selected", "action", selected)
			result = s.dispatch(action(selected))
		} else {
			answer, ok := s.prompt("No action was selected. Continue (Y/N)? ")
			if !ok {
				return nil
			}

			if strings.EqualFold(answer, "n") {
				result = s.exit()
			}
		}

		if ierrors.Is(result, errExit) {
			s.println("Bye!")
			return nil
		}
	}

	return ctx.Err()
}

func (s *session) dispatch(selected action) error {
	switch selected {
	case actionAdd:
		s.add()
	case actionDelete:
		s.delete()
	case actionMeaning:
		s.meaning()
	case actionList:
		s.list()
	case actionSpellCheck:
		s.spellCheck()
	case actionExit:
		return s.exit()
	default:
		s.printf("%d is not a valid action.\n", selected)
	}

	return nil
}

func (s *session) add() {
	line, ok := s.prompt(`Please type a word and its meaning separated by ":" [word:meaning] > `)
	if !ok {
		return
	}

	word, definition, err := dictionary.ParseSeedLine(line)
	if err != nil {
		s.printf("%q is not a valid entry.\n", line)
		return
	}

	if confirmed, _ := s.confirm(fmt.Sprintf("Add %q with its meaning %q (Y/N)? ", word, definition)); !confirmed {
		return
	}

	if !s.dictionary.Add(word, definition) {
		s.printf("%q already has a meaning and was not changed\n", word)
		return
	}

	s.printf("%q was added to dictionary\n", word)
}

func (s *session) delete() {
	word, ok := s.prompt("Please type the word you want deleted > ")
	if !ok {
		return
	}

	if confirmed, _ := s.confirm(fmt.Sprintf("Are you sure you want to delete %q (Y/N)? ", word)); !confirmed {
		return
	}

	if err := s.dictionary.Delete(word); err != nil {
		if !ierrors.Is(err, wordtree.ErrNotFound) {
			s.log.Errorw("delete failed", "word", word, "err", err)
		}
		s.printf("%q hasn't been added to the dictionary yet\n", word)

		return
	}

	s.printf("%q was deleted successfully\n", word)
}

func (s *session) meaning() {
	word, ok := s.prompt("Please type a word you want a meaning for > ")
	if !ok {
		return
	}

	switch description := s.dictionary.Describe(word); description.Status {
	case dictionary.Defined:
		s.printf("%q means: %q\n", word, description.Definition)
	case dictionary.Placeholder:
		s.printf("%q is in the dictionary but has no meaning defined yet\n", word)
	default:
		s.printf("%q hasn't been added to the dictionary yet\n", word)
	}
}

func (s *session) list() {
	if confirmed, _ := s.confirm(fmt.Sprintf("List all the %d words in the dictionary (Y/N)? ", s.dictionary.Count())); !confirmed {
		return
	}

	for _, word := range s.dictionary.Words() {
		s.println(word)
	}
}

func (s *session) spellCheck() {
	path, ok := s.prompt("Please type the path of the file that will be checked for spelling > ")
	if !ok {
		return
	}

	if path == "" {
		s.println("No file was selected.")
		return
	}

	report, err := spellcheck.CheckFile(path, s.dictionary)
	if err != nil {
		s.log.Warnw("spell check failed", "path", path, "err", err)
		s.printf("Unable to check %q: %s\n", path, err)

		return
	}

	s.printf("The following %d words from the file are not in the dictionary:\n", len(report.Missing))
	for _, word := range report.Missing {
		s.println(word)
	}
}

func (s *session) exit() error {
	if confirmed, _ := s.confirm("Are you sure you want to exit (Y/N)? "); confirmed {
		return errExit
	}

	return nil
}

func (s *session) showMenu() {
	menu, err := pterm.DefaultBulletList.WithItems(menuItems).Srender()
	if err != nil {
		s.log.Errorw("rendering menu failed", "err", err)
		return
	}

	s.printf("\n%s\n%s\n", pterm.DefaultSection.Sprint("SPELL CHECKER"), menu)
}

// prompt prints the message and returns the next trimmed input line. It returns false if the input is exhausted.
func (s *session) prompt(message string) (line string, ok bool) {
	s.printf("%s", message)

	if !s.input.Scan() {
		if err := s.input.Err(); err != nil {
			s.log.Errorw("reading input failed", "err", err)
		}

		return "", false
	}

	return strings.TrimSpace(s.input.Text()), true
}

// confirm asks a yes/no question and reports whether it was answered with "y".
func (s *session) confirm(question string) (confirmed bool, ok bool) {
	answer, ok := s.prompt(question)

	return strings.EqualFold(answer, "y"), ok
}

func (s *session) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.output, format, args...)
}

func (s *session) println(line string) {
	_, _ = fmt.Fprintln(s.output, line)
}
