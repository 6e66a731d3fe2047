// Demo code for the drag-to-reorder List primitive, wired into a fuller
// application stack: viper configuration, zap logging with lumberjack
// rotation, uuid task identities, a help bar, and a layered help overlay.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/xqrs/draglist"
	"github.com/xqrs/draglist/dnd"
	"github.com/xqrs/draglist/help"
	"github.com/xqrs/draglist/keybind"
	"github.com/xqrs/draglist/layers"
)

// keymap bundles the list's bindings with the application's own. It serves
// as the key map for both the short help bar and the full help overlay.
type keymap struct {
	list draglist.ListKeybinds
	add  keybind.Keybind
	yank keybind.Keybind
	help keybind.Keybind
	quit keybind.Keybind
}

func (k keymap) ShortHelp() []keybind.Keybind {
	return append(k.list.ShortHelp(), k.add, k.help, k.quit)
}

func (k keymap) FullHelp() [][]keybind.Keybind {
	return append(k.list.FullHelp(), []keybind.Keybind{k.add, k.yank, k.help, k.quit})
}

// mainView is the base layer: the task list above a status line and a help
// bar. Keys the view doesn't handle itself go to the list.
type mainView struct {
	*draglist.Box

	list *draglist.List
	bar  *help.Help
	keys keymap

	showHelp func()
	showAdd  func()
	yank     func() draglist.Command

	status string
	hint   dnd.Cursor
}

func (v *mainView) Draw(screen tcell.Screen) {
	v.DrawForSubclass(screen, v)

	x, y, width, height := v.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	v.list.SetRect(x, y, width, max(height-2, 0))
	v.list.Draw(screen)

	if height >= 2 {
		v.drawStatus(screen, x, y+height-2, width)
	}
	v.bar.SetRect(x, y+height-1, width, 1)
	v.bar.Draw(screen)
}

func (v *mainView) drawStatus(screen tcell.Screen, x, y, width int) {
	style := tcell.StyleDefault.
		Foreground(draglist.Styles.SecondaryTextColor).
		Background(draglist.Styles.PrimitiveBackgroundColor)
	for col := x; col < x+width; col++ {
		screen.Put(col, y, " ", style)
	}

	status := v.status
	if v.hint != dnd.CursorNone {
		status = fmt.Sprintf("%s • %s", status, v.hint)
	}
	draglist.PrintWithStyle(screen, status, x+1, y, max(width-2, 0), draglist.AlignmentLeft, style)
}

func (v *mainView) IsDirty() bool {
	return v.Box.IsDirty() || v.list.IsDirty() || v.bar.IsDirty()
}

func (v *mainView) MarkClean() {
	v.Box.MarkClean()
	v.list.MarkClean()
	v.bar.MarkClean()
}

func (v *mainView) HasFocus() bool {
	return v.list.HasFocus() || v.Box.HasFocus()
}

func (v *mainView) Focus(delegate func(p draglist.Primitive)) {
	if delegate != nil {
		delegate(v.list)
		return
	}
	v.Box.Focus(delegate)
}

func (v *mainView) InputHandler(event *tcell.EventKey) draglist.Command {
	switch {
	case keybind.Matches(event, v.keys.quit):
		return draglist.QuitCommand{}
	case keybind.Matches(event, v.keys.help):
		v.showHelp()
		return draglist.ConsumeEventCommand{}
	case keybind.Matches(event, v.keys.add):
		v.showAdd()
		return draglist.ConsumeEventCommand{}
	case keybind.Matches(event, v.keys.yank):
		return v.yank()
	}
	return v.list.InputHandler(event)
}

func (v *mainView) MouseHandler(action draglist.MouseAction, event *tcell.EventMouse) (draglist.Primitive, draglist.Command) {
	return v.list.MouseHandler(action, event)
}

// helpOverlay shows the full key bindings above a dimmed main view. Any of
// the toggle keys, escape, or a click dismisses it.
type helpOverlay struct {
	*help.Help

	keys  keymap
	close func()
}

func (h *helpOverlay) InputHandler(event *tcell.EventKey) draglist.Command {
	if event.Key() == tcell.KeyEscape || keybind.Matches(event, h.keys.help, h.keys.quit) {
		h.close()
		return draglist.ConsumeEventCommand{}
	}
	return nil
}

func (h *helpOverlay) MouseHandler(action draglist.MouseAction, event *tcell.EventMouse) (draglist.Primitive, draglist.Command) {
	if action == draglist.MouseLeftDown {
		h.close()
		return nil, draglist.ConsumeEventCommand{}
	}
	return nil, nil
}

// addOverlay is a small centered input box for new tasks. Clicking outside it
// cancels; Enter and Escape are handled by the input field's done callback.
type addOverlay struct {
	*draglist.InputField

	cancel func()
}

// SetRect centers the input box within the layer rect the stack hands down.
func (a *addOverlay) SetRect(x, y, width, height int) {
	boxWidth := min(52, width)
	boxHeight := min(3, height)
	a.InputField.SetRect(x+(width-boxWidth)/2, y+(height-boxHeight)/2, boxWidth, boxHeight)
}

func (a *addOverlay) MouseHandler(action draglist.MouseAction, event *tcell.EventMouse) (draglist.Primitive, draglist.Command) {
	if action == draglist.MouseLeftDown {
		if x, y := event.Position(); !a.InRect(x, y) {
			a.cancel()
			return nil, draglist.ConsumeEventCommand{}
		}
	}
	return a.InputField.MouseHandler(action, event)
}

type taskConfig struct {
	Name string `mapstructure:"name"`
	Note string `mapstructure:"note"`
}

func initConfig() error {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("TASKS")
	viper.AutomaticEnv()

	viper.SetDefault("log.file", "tasks.log")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.max_size", 5)
	viper.SetDefault("log.max_backups", 3)
	viper.SetDefault("list.handles", true)
	viper.SetDefault("list.placeholder", true)
	viper.SetDefault("list.gap", 0)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
		// No config file; defaults and environment apply.
	}
	return nil
}

// newLogger builds a file-only logger. The screen owns stdout while the
// application runs, so nothing may log to the terminal.
func newLogger() *zap.Logger {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(viper.GetString("log.level"))); err != nil {
		level.SetLevel(zap.InfoLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   viper.GetString("log.file"),
		MaxSize:    viper.GetInt("log.max_size"),
		MaxBackups: viper.GetInt("log.max_backups"),
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileWriter, level)

	logger := zap.New(core).Named("tasks")
	zap.ReplaceGlobals(logger)
	return logger
}

func loadTasks(logger *zap.Logger) []taskConfig {
	var tasks []taskConfig
	if err := viper.UnmarshalKey("tasks", &tasks); err != nil {
		logger.Warn("invalid tasks in config", zap.Error(err))
	}
	if len(tasks) > 0 {
		return tasks
	}
	return []taskConfig{
		{Name: "Collect the mail", Note: "box 12, lobby"},
		{Name: "Water the plants", Note: "skip the cactus"},
		{Name: "File the report", Note: "due thursday"},
		{Name: "Fix the bike light"},
		{Name: "Call the plumber", Note: "kitchen sink drips"},
		{Name: "Sort the bookshelf"},
	}
}

func main() {
	if err := initConfig(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := newLogger()

	keys := keymap{
		list: draglist.DefaultListKeybinds(),
		add: keybind.NewKeybind(
			keybind.WithKeys("a"),
			keybind.WithHelp("a", "add task"),
		),
		yank: keybind.NewKeybind(
			keybind.WithKeys("y"),
			keybind.WithHelp("y", "copy name"),
		),
		help: keybind.NewKeybind(
			keybind.WithKeys("?"),
			keybind.WithHelp("?", "help"),
		),
		quit: keybind.NewKeybind(
			keybind.WithKeys("q", "ctrl+c"),
			keybind.WithHelp("q", "quit"),
		),
	}

	list := draglist.NewList().
		SetShowHandles(viper.GetBool("list.handles")).
		SetShowPlaceholder(viper.GetBool("list.placeholder")).
		SetGap(viper.GetInt("list.gap")).
		SetKeybinds(keys.list)
	list.ScrollBar().
		SetGlyphSet(draglist.UnicodeGlyphSet()).
		SetTrackGlyph(draglist.BlockLightShade, true).
		SetThumbStyle(tcell.StyleDefault.Foreground(draglist.Styles.SecondaryTextColor))
	list.SetBorders(draglist.BordersAll).
		SetTitle(" Tasks ")

	for _, t := range loadTasks(logger) {
		id := uuid.NewString()
		item := draglist.NewTextItem(t.Name)
		item.SetDragID(dnd.HashString(id))
		if t.Note != "" {
			item.SetSecondary(t.Note)
		}
		list.AddItem(item)
		logger.Debug("task loaded", zap.String("id", id), zap.String("name", t.Name))
	}
	list.SetCursor(0)

	view := &mainView{
		Box:    draglist.NewBox(),
		list:   list,
		bar:    help.New().SetKeyMap(keys),
		keys:   keys,
		status: fmt.Sprintf("%d tasks", list.ItemCount()),
	}

	full := help.New().
		SetKeyMap(keys).
		SetShowAll(true)
	full.SetBorders(draglist.BordersAll).
		SetTitle(" Key bindings ").
		SetBorderPadding(1, 1, 2, 2)
	overlay := &helpOverlay{Help: full, keys: keys}

	input := draglist.NewInputField().
		SetLabel(" task ").
		SetPlaceholder("describe the task")
	input.SetBorders(draglist.BordersAll).
		SetTitle(" New task ")
	adder := &addOverlay{InputField: input}

	stack := layers.New()
	stack.SetBackgroundLayerStyle(tcell.StyleDefault.Dim(true))
	stack.AddLayer(view,
		layers.WithName("main"),
		layers.WithResize(true))
	stack.AddLayer(overlay,
		layers.WithName("help"),
		layers.WithResize(true),
		layers.WithVisible(false),
		layers.WithOverlay())
	stack.AddLayer(adder,
		layers.WithName("add"),
		layers.WithResize(true),
		layers.WithVisible(false),
		layers.WithOverlay())
	view.showHelp = func() { stack.ShowLayer("help") }
	overlay.close = func() { stack.HideLayer("help") }

	taskName := func(index int) string {
		if item, ok := list.GetItem(index).(*draglist.TextItem); ok {
			return item.GetText()
		}
		return ""
	}
	order := func() []string {
		items := list.GetItems()
		names := make([]string, 0, len(items))
		for _, item := range items {
			if text, ok := item.(*draglist.TextItem); ok {
				names = append(names, text.GetText())
			}
		}
		return names
	}

	addTask := func(name string) {
		id := uuid.NewString()
		item := draglist.NewTextItem(name)
		item.SetDragID(dnd.HashString(id))
		list.AddItem(item)
		list.SetCursor(list.ItemCount() - 1)
		view.status = fmt.Sprintf("added %q", name)
		view.MarkDirty()
		logger.Info("task added", zap.String("id", id), zap.String("name", name))
	}
	closeAdd := func() { stack.HideLayer("add") }
	input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			if name := strings.TrimSpace(input.GetText()); name != "" {
				addTask(name)
			}
			closeAdd()
		case tcell.KeyEscape:
			closeAdd()
		}
	})
	adder.cancel = closeAdd
	view.showAdd = func() {
		input.SetText("")
		stack.ShowLayer("add")
	}
	view.yank = func() draglist.Command {
		name := taskName(list.Cursor())
		if name == "" {
			return nil
		}
		view.status = fmt.Sprintf("copied %q", name)
		view.MarkDirty()
		return draglist.SetClipboardCommand(name)
	}

	list.SetChangedFunc(func(index int) {
		if index >= 0 {
			view.status = fmt.Sprintf("selected %q", taskName(index))
			view.MarkDirty()
		}
	})
	list.SetMovedFunc(func(from, to int) {
		name := taskName(dnd.Indices{Source: from, Target: to}.Apply(from))
		view.status = fmt.Sprintf("moved %q", name)
		view.MarkDirty()
		logger.Info("task moved",
			zap.Int("from", from),
			zap.Int("to", to),
			zap.String("task", name),
			zap.Strings("order", order()))
	})
	list.SetSelectedFunc(func(index int) {
		name := taskName(index)
		list.RemoveItem(index)
		view.status = fmt.Sprintf("completed %q, %d left", name, list.ItemCount())
		view.MarkDirty()
		logger.Info("task completed", zap.String("task", name), zap.Int("index", index))
	})
	list.SetCursorHintFunc(func(cursor dnd.Cursor) {
		view.hint = cursor
		view.MarkDirty()
	})

	app := draglist.NewApplication().
		EnableMouse(true).
		SetRoot(stack)
	if err := app.Run(); err != nil {
		logger.Error("application error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}

	logger.Info("session ended", zap.Strings("order", order()))
	_ = logger.Sync()

	fmt.Println("remaining tasks:")
	for i, name := range order() {
		fmt.Printf("%2d. %s\n", i+1, name)
	}
}
