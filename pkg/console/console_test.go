package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConsole builds a console over a fixed input with a quit command
// (quit, q, exit) and an echo command registered.
func testConsole(t *testing.T, input string, opts ...Option) (*Console, *bytes.Buffer, *int) {
	t.Helper()
	quits := 0
	out := &bytes.Buffer{}

	b := NewBuilder()
	b.MustRegister([]string{"quit", "q", "exit"}, Func0(func() error {
		quits++
		return nil
	}), "Quit the console")
	b.MustRegister([]string{"echo"}, Func1(func(s string) error {
		// Handlers print through the console output.
		_, err := out.WriteString(s + "\n")
		return err
	}), "Print the argument")

	c, err := b.Build(NewScannerReader(strings.NewReader(input)), out, opts...)
	require.NoError(t, err)
	return c, out, &quits
}

func TestConsole_PromptInvokesHandlerOnce(t *testing.T) {
	c, out, quits := testConsole(t, "q\n")

	ok, err := c.Prompt()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, *quits)
	assert.Equal(t, ">_", out.String())
}

func TestConsole_TrailingSpaceIsDropped(t *testing.T) {
	c, out, quits := testConsole(t, "q \n q\n", WithConfig(Config{UnrecognizedText: "?"}))

	ok, err := c.Prompt()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, *quits)

	ok, err = c.Prompt()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, *quits)
	assert.Equal(t, "?\n", out.String())
}

func TestConsole_PromptArityMismatch(t *testing.T) {
	c, out, quits := testConsole(t, "q extra\n")

	ok, err := c.Prompt()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, *quits)
	assert.Equal(t, ">_The command q takes 0 arguments. You entered 1. Type help for more information about commands.\n", out.String())
}

func TestConsole_UnrecognizedInputText(t *testing.T) {
	c, out, _ := testConsole(t, "")

	require.ErrorIs(t, c.Execute("zzz"), ErrUnrecognizedInput)
	assert.Equal(t, DefaultUnrecognizedInputText+"\n", out.String())

	out.Reset()
	c.SetUnrecognizedInputText("What?")
	c.Execute("zzz")
	assert.Equal(t, "What?\n", out.String())
	assert.Equal(t, "What?", c.Config().UnrecognizedText)
}

func TestConsole_CustomPromptText(t *testing.T) {
	c, out, _ := testConsole(t, "echo hi\necho there\n")

	ok, err := c.PromptWith("say> ")
	require.NoError(t, err)
	assert.True(t, ok)

	c.SetDefaultPromptText("$ ")
	_, err = c.Prompt()
	require.NoError(t, err)

	assert.Equal(t, "say> hi\n$ there\n", out.String())
}

func TestConsole_InputExhaustedPropagates(t *testing.T) {
	c, _, _ := testConsole(t, "q\n")

	_, err := c.Prompt()
	require.NoError(t, err)

	ok, err := c.Prompt()
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInputExhausted)
	assert.Equal(t, KindInputExhausted, Kind(err))
}

func TestConsole_HandlerErrorPrintsMessageAndContinues(t *testing.T) {
	out := &bytes.Buffer{}
	b := NewBuilder()
	b.MustRegister([]string{"save"}, Func1(func(string) error { return errors.New("disk full") }), "")
	b.MustRegister([]string{"boom"}, Func0(func() error { panic("kaboom") }), "")

	c, err := b.Build(NewScannerReader(strings.NewReader("save x\nboom\nhelp\n")), out, WithConfig(Config{}))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := c.Prompt()
		require.NoError(t, err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "disk full", lines[0])
	assert.Equal(t, "panic: kaboom", lines[1])
	assert.Equal(t, "save : "+DefaultInfoText, lines[2])
	assert.Equal(t, "boom : "+DefaultInfoText, lines[3])
	assert.Equal(t, "help : Displays all possible commands", lines[4])
}

func TestConsole_NestedDispatchFailurePrintsHandlerMessage(t *testing.T) {
	out := &bytes.Buffer{}
	b := NewBuilder()
	b.MustRegister([]string{"need"}, Func1(func(string) error { return nil }), "")

	var c *Console
	b.MustRegister([]string{"again"}, Func1(func(line string) error {
		return c.Execute(line)
	}), "Dispatch the argument as a line")

	c, err := b.Build(NewScannerReader(strings.NewReader("")), out, WithConfig(Config{}))
	require.NoError(t, err)

	err = c.Execute("again need")
	assert.Equal(t, KindHandlerError, Kind(err))
	assert.True(t, IsRecoverable(err))

	arity := "The command need takes 1 arguments. You entered 0. Type help for more information about commands."
	// The inner Execute prints the arity line, the outer one prints the
	// handler's message, which is the same text without the wrapper.
	assert.Equal(t, arity+"\n"+arity+"\n", out.String())
	assert.NotContains(t, out.String(), "command again failed")
}

func TestConsole_HelpListsActiveCommandsInOrder(t *testing.T) {
	c, out, _ := testConsole(t, "")

	c.Help()
	assert.Equal(t, "quit : Quit the console\necho : Print the argument\nhelp : Displays all possible commands\n", out.String())

	out.Reset()
	c.DeactivateAllCommands()
	require.True(t, c.ActivateCommand("help"))
	require.True(t, c.ActivateCommand("exit"))
	require.NoError(t, c.Execute("help"))
	assert.Equal(t, "help : Displays all possible commands\nquit : Quit the console\n", out.String())
}

func TestConsole_DeactivateAllThenActivateAllRestoresRegistry(t *testing.T) {
	c, _, _ := testConsole(t, "")
	original := names(c.Commands())

	for i := 0; i < 3; i++ {
		c.DeactivateAllCommands()
		assert.Empty(t, c.ActiveCommands())
		assert.Equal(t, original, names(c.Commands()))

		c.ActivateAllCommands()
		assert.Equal(t, original, names(c.ActiveCommands()))
	}
}

func TestConsole_ActivateCommandIdempotent(t *testing.T) {
	c, _, _ := testConsole(t, "")
	c.DeactivateAllCommands()

	require.True(t, c.ActivateCommand("q"))
	require.True(t, c.ActivateCommand("quit"))
	assert.Equal(t, []string{"quit"}, names(c.ActiveCommands()))
	assert.True(t, c.IsActive("exit"))

	assert.False(t, c.ActivateCommand("nope"))
	assert.True(t, c.DeactivateCommand("exit"))
	assert.False(t, c.IsActive("quit"))
}

func TestConsole_WithActiveCommands(t *testing.T) {
	c, _, _ := testConsole(t, "", WithActiveCommands("echo", "help"))
	assert.Equal(t, []string{"echo", "help"}, names(c.ActiveCommands()))

	b := NewBuilder()
	_, err := b.Build(NewScannerReader(strings.NewReader("")), &bytes.Buffer{}, WithActiveCommands("missing"))
	assert.Error(t, err)
}

func TestConsole_Completions(t *testing.T) {
	c, _, _ := testConsole(t, "")

	assert.Equal(t, []string{"quit", "q", "exit", "echo", "help"}, c.Completions(""))
	assert.Equal(t, []string{"exit", "echo"}, c.Completions("e"))

	c.DeactivateCommand("echo")
	assert.Equal(t, []string{"exit"}, c.Completions("e"))
}

func TestConsole_Println(t *testing.T) {
	c, out, _ := testConsole(t, "")
	c.Println("hello")
	c.Println("")
	assert.Equal(t, "hello\n\n", out.String())
}

func TestConsole_SessionID(t *testing.T) {
	c1, _, _ := testConsole(t, "")
	c2, _, _ := testConsole(t, "")
	assert.NotEmpty(t, c1.Session())
	assert.NotEqual(t, c1.Session(), c2.Session())
}

func TestBuild_RequiresCollaborators(t *testing.T) {
	_, err := NewBuilder().Build(nil, &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewBuilder().Build(NewScannerReader(strings.NewReader("")), nil)
	assert.Error(t, err)
}

// promptingReader draws its own prompt and supports completion.
type promptingReader struct {
	lines      []string
	prompts    []string
	candidates func() []string
}

func (p *promptingReader) ReadLine() (string, error) {
	if len(p.lines) == 0 {
		return "", ErrInterrupted
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}

func (p *promptingReader) SetPrompt(prompt string) {
	p.prompts = append(p.prompts, prompt)
}

func (p *promptingReader) SetCompleter(candidates func() []string) {
	p.candidates = candidates
}

func TestConsole_PromptSetterAndCompleter(t *testing.T) {
	reader := &promptingReader{lines: []string{"help"}}
	out := &bytes.Buffer{}

	c, err := NewBuilder().Build(reader, out)
	require.NoError(t, err)

	ok, err := c.PromptWith("> ")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"> "}, reader.prompts)
	assert.Equal(t, "help : Displays all possible commands\n", out.String())

	require.NotNil(t, reader.candidates)
	assert.Equal(t, []string{"help"}, reader.candidates())

	_, err = c.Prompt()
	assert.ErrorIs(t, err, ErrInterrupted)
}

func TestScannerReader(t *testing.T) {
	r := NewScannerReader(strings.NewReader("one\r\ntwo  \n\nlast"))

	for _, want := range []string{"one", "two  ", "", "last"} {
		line, err := r.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := r.ReadLine()
	assert.ErrorIs(t, err, ErrInputExhausted)
}
