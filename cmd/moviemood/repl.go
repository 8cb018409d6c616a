package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/amaumene/moviemood/internal/constants"
	"github.com/amaumene/moviemood/internal/controller"
)

const helpText = `Commands:
  search <query>   search movies by title
  mood <mood>      movies for a mood (see "moods")
  genre <genre>    movies for a genre (see "genres")
  trending         trending movies
  popular          popular movies
  top              top rated movies
  movie <id>       open a movie detail
  close            close the movie detail
  clear            clear the active filter
  moods            list moods
  genres           list genres
  help             show this help
  quit             exit`

// selector is the controller surface the REPL drives.
type selector interface {
	Select(sel controller.Selection)
	SelectFromQuery(query string) bool
	OpenDetail(id int) error
	CloseDetail()
}

type command struct {
	name string
	arg  string
}

// parseCommand splits a line into a lowercased command name and the trimmed
// rest of the line.
func parseCommand(line string) (command, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return command{}, false
	}
	name, arg, _ := strings.Cut(line, " ")
	return command{name: strings.ToLower(name), arg: strings.TrimSpace(arg)}, true
}

type repl struct {
	out    io.Writer
	ctrl   selector
	moods  []string
	genres []string
}

func newREPL(out io.Writer, ctrl selector, moods, genres []string) *repl {
	return &repl{out: out, ctrl: ctrl, moods: moods, genres: genres}
}

// run reads commands from in until quit or end of input.
func (r *repl) run(in io.Reader) {
	fmt.Fprintln(r.out, `moviemood, type "help" for commands`)
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd, ok := parseCommand(scanner.Text())
		if !ok {
			continue
		}
		if !r.execute(cmd) {
			return
		}
	}
}

// execute runs cmd and reports whether the loop should continue.
func (r *repl) execute(cmd command) bool {
	switch cmd.name {
	case "search":
		if !r.ctrl.SelectFromQuery(cmd.arg) {
			fmt.Fprintln(r.out, "usage: search <query>")
		}
	case "mood":
		mood, ok := constants.Lookup(r.moods, cmd.arg)
		if !ok {
			fmt.Fprintf(r.out, "unknown mood %q\n", cmd.arg)
			break
		}
		r.ctrl.Select(controller.Mood(mood))
	case "genre":
		genre, ok := constants.Lookup(r.genres, cmd.arg)
		if !ok {
			fmt.Fprintf(r.out, "unknown genre %q\n", cmd.arg)
			break
		}
		r.ctrl.Select(controller.Genre(genre))
	case "trending":
		r.ctrl.Select(controller.Trending())
	case "popular":
		r.ctrl.Select(controller.Popular())
	case "top", "top-rated":
		r.ctrl.Select(controller.TopRated())
	case "movie":
		id, err := strconv.Atoi(cmd.arg)
		if err != nil {
			fmt.Fprintln(r.out, "usage: movie <id>")
			break
		}
		if err := r.ctrl.OpenDetail(id); err != nil {
			fmt.Fprintln(r.out, err)
		}
	case "close":
		r.ctrl.CloseDetail()
	case "clear":
		r.ctrl.Select(controller.None())
	case "moods":
		fmt.Fprintln(r.out, strings.Join(r.moods, ", "))
	case "genres":
		fmt.Fprintln(r.out, strings.Join(r.genres, ", "))
	case "help":
		fmt.Fprintln(r.out, helpText)
	case "quit", "exit":
		return false
	default:
		fmt.Fprintf(r.out, "unknown command %q, type \"help\"\n", cmd.name)
	}
	return true
}
