package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/anandhx/Task-Management-System/internal/adapter/cli/middleware"
	"github.com/anandhx/Task-Management-System/internal/adapter/cli/render"
	"github.com/anandhx/Task-Management-System/internal/adapter/cli/validation"
	"github.com/anandhx/Task-Management-System/internal/adapter/export"
	"github.com/anandhx/Task-Management-System/internal/core/domain"
	"github.com/anandhx/Task-Management-System/internal/core/ports"
	"github.com/anandhx/Task-Management-System/pkg/clierrors"
	"github.com/anandhx/Task-Management-System/pkg/translator"
)

const (
	choiceDueSoon   = "0"
	choiceAdd       = "1"
	choiceViewAll   = "2"
	choicePending   = "3"
	choiceCompleted = "4"
	choiceSearch    = "5"
	choiceSort      = "6"
	choiceUpdate    = "7"
	choiceDelete    = "8"
	choiceExit      = "9"
	choiceExport    = "10"
)

type Options struct {
	In        io.Reader
	Out       io.Writer
	Style     render.Style
	Language  string
	Logger    *zap.Logger
	ExportDir string
	Now       func() time.Time
}

// Menu is the interactive numbered menu. It reads one answer per line.
type Menu struct {
	taskService ports.TaskService
	exporter    *export.Exporter

	in        *bufio.Reader
	out       io.Writer
	style     render.Style
	lang      string
	localizer *i18n.Localizer
	logger    *zap.Logger
	exportDir string
	now       func() time.Time

	eof bool
}

func NewMenu(taskService ports.TaskService, exporter *export.Exporter, opts Options) *Menu {
	lang := translator.ResolveLanguage(opts.Language)
	if opts.Logger == nil {
		opts.Logger = zap.L()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	return &Menu{
		taskService: taskService,
		exporter:    exporter,
		in:          bufio.NewReader(opts.In),
		out:         opts.Out,
		style:       opts.Style,
		lang:        lang,
		localizer:   translator.Localizer(lang),
		logger:      opts.Logger,
		exportDir:   opts.ExportDir,
		now:         opts.Now,
	}
}

// Run shows the menu until the user exits or input ends. Failed actions are
// reported and the loop continues.
func (m *Menu) Run(ctx context.Context) error {
	for !m.eof {
		m.style.Clear(m.out)

		due, err := m.taskService.DueSoon(ctx, m.now())
		if err != nil {
			m.logger.Warn("failed to check due soon tasks", zap.Error(err))
			m.report(err)
		}
		m.printMenu(len(due))

		choice, ok := m.ask(m.t("menuChoice", nil))
		if !ok {
			break
		}

		switch choice {
		case choiceDueSoon:
			if len(due) == 0 {
				m.invalidChoice()
				continue
			}
			m.style.Clear(m.out)
			m.style.Println(m.out, render.KindWarning, m.t("headingDueSoon", nil))
			m.renderTasks(due)
			m.pause("pressEnterMenu")
		case choiceAdd:
			m.action(ctx, "add task", "headingAdd", m.addTask)
		case choiceViewAll:
			m.action(ctx, "list tasks", "headingAll", func(ctx context.Context) error {
				return m.listTasks(ctx, domain.SortNone)
			})
		case choicePending:
			m.action(ctx, "list pending tasks", "headingPending", func(ctx context.Context) error {
				return m.listByStatus(ctx, domain.TaskStatusPending)
			})
		case choiceCompleted:
			m.action(ctx, "list completed tasks", "headingCompleted", func(ctx context.Context) error {
				return m.listByStatus(ctx, domain.TaskStatusCompleted)
			})
		case choiceSearch:
			m.action(ctx, "search tasks", "headingSearch", m.searchTasks)
		case choiceSort:
			m.action(ctx, "sort tasks", "headingSort", m.sortTasks)
		case choiceUpdate:
			m.action(ctx, "update task", "headingUpdate", m.updateTask)
		case choiceDelete:
			m.action(ctx, "delete task", "headingDelete", m.deleteTask)
		case choiceExport:
			m.action(ctx, "export tasks", "headingExport", m.exportTasks)
		case choiceExit:
			m.eof = true
		default:
			m.invalidChoice()
		}
	}

	m.style.Println(m.out, render.KindSuccess, m.t("exiting", nil))
	return nil
}

func (m *Menu) printMenu(dueCount int) {
	m.style.Println(m.out, render.KindPrompt, m.t("menuTitle", nil))
	fmt.Fprintln(m.out)
	if dueCount > 0 {
		m.style.Println(m.out, render.KindError, m.t("menuDueSoon", map[string]any{"Count": dueCount}))
	}
	for _, id := range []string{
		"menuAdd", "menuViewAll", "menuViewPending", "menuViewCompleted", "menuSearch",
		"menuSort", "menuUpdate", "menuDelete", "menuExit", "menuExport",
	} {
		fmt.Fprintln(m.out, m.t(id, nil))
	}
	fmt.Fprintln(m.out)
	m.style.Println(m.out, render.KindPrompt, m.t("menuFooter", nil))
}

// action clears the screen, prints the heading, runs fn through the logging
// middleware and waits for the user before returning to the menu.
func (m *Menu) action(ctx context.Context, name, heading string, fn func(ctx context.Context) error) {
	m.style.Clear(m.out)
	m.style.Println(m.out, render.KindPrompt, m.t(heading, nil))

	err := middleware.Logged(m.logger, name, func() error {
		return fn(ctx)
	})
	if err != nil && !errors.Is(err, errInputClosed) {
		m.report(err)
	}
	m.pause("pressEnter")
}

var errInputClosed = errors.New("input closed")

func (m *Menu) addTask(ctx context.Context) error {
	description, ok := m.ask(m.t("promptDescription", nil))
	if !ok {
		return errInputClosed
	}
	deadline, ok := m.ask(m.t("promptDeadline", nil))
	if !ok {
		return errInputClosed
	}
	priority, ok := m.ask(m.t("promptPriority", nil))
	if !ok {
		return errInputClosed
	}

	input := validation.BuildNewTaskInput(description, deadline, priority)
	if _, err := m.taskService.AddTask(ctx, input); err != nil {
		return err
	}
	if validation.PriorityDefaulted(input.Priority) {
		m.style.Println(m.out, render.KindWarning, m.t("priorityDefaulted", nil))
	}
	m.style.Println(m.out, render.KindSuccess, m.t("taskAdded", nil))
	return nil
}

func (m *Menu) listTasks(ctx context.Context, sortKey domain.SortKey) error {
	tasks, err := m.taskService.ListTasks(ctx, sortKey)
	if err != nil {
		return err
	}
	m.renderTasks(tasks)
	return nil
}

func (m *Menu) listByStatus(ctx context.Context, status domain.TaskStatus) error {
	tasks, err := m.taskService.ListByStatus(ctx, status)
	if err != nil {
		return err
	}
	m.renderTasks(tasks)
	return nil
}

func (m *Menu) searchTasks(ctx context.Context) error {
	keyword, ok := m.ask(m.t("promptKeyword", nil))
	if !ok {
		return errInputClosed
	}

	tasks, err := m.taskService.SearchTasks(ctx, keyword)
	if err != nil {
		return err
	}
	m.renderTasks(tasks)
	return nil
}

func (m *Menu) sortTasks(ctx context.Context) error {
	for _, id := range []string{"sortDeadline", "sortStatus", "sortPriority"} {
		fmt.Fprintln(m.out, m.t(id, nil))
	}
	choice, ok := m.ask(m.t("promptSortChoice", nil))
	if !ok {
		return errInputClosed
	}

	sortKey, ok := validation.ParseSortChoice(choice)
	if !ok {
		m.style.Println(m.out, render.KindError, m.t("invalidSortChoice", nil))
		return nil
	}
	return m.listTasks(ctx, sortKey)
}

func (m *Menu) updateTask(ctx context.Context) error {
	id, ok := m.askTaskID("promptTaskID")
	if !ok {
		return nil
	}
	description, ok := m.ask(m.t("promptNewDescription", nil))
	if !ok {
		return errInputClosed
	}
	status, ok := m.ask(m.t("promptNewStatus", nil))
	if !ok {
		return errInputClosed
	}
	priority, ok := m.ask(m.t("promptNewPriority", nil))
	if !ok {
		return errInputClosed
	}

	found, err := m.taskService.UpdateTask(ctx, id, validation.BuildTaskUpdateInput(description, status, priority))
	if err != nil {
		return err
	}
	m.reportFound(found, "taskUpdated")
	return nil
}

func (m *Menu) deleteTask(ctx context.Context) error {
	id, ok := m.askTaskID("promptDeleteID")
	if !ok {
		return nil
	}

	found, err := m.taskService.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	m.reportFound(found, "taskDeleted")
	return nil
}

func (m *Menu) exportTasks(ctx context.Context) error {
	answer, ok := m.ask(m.t("promptExportFormat", nil))
	if !ok {
		return errInputClosed
	}
	format, err := export.ParseFormat(answer)
	if err != nil {
		return err
	}

	path := filepath.Join(m.exportDir, fmt.Sprintf("tasks-%s.%s", m.now().Format("20060102-150405"), format))
	file, err := os.Create(path)
	if err != nil {
		return domain.NewStorageError("create export file", err)
	}

	if err := m.exporter.Export(ctx, format, file); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return err
	}
	if err := file.Close(); err != nil {
		return domain.NewStorageError("close export file", err)
	}

	m.style.Println(m.out, render.KindSuccess, m.t("exported", map[string]any{"Path": path}))
	return nil
}

func (m *Menu) askTaskID(prompt string) (int64, bool) {
	raw, ok := m.ask(m.t(prompt, nil))
	if !ok {
		return 0, false
	}
	id, err := validation.ParseTaskID(raw)
	if err != nil {
		m.style.Println(m.out, render.KindError, clierrors.GetTransErrorMsg(clierrors.MsgInvalidTaskID, m.lang, nil))
		return 0, false
	}
	return id, true
}

func (m *Menu) reportFound(found bool, successID string) {
	if !found {
		m.style.Println(m.out, render.KindError, m.t("taskNotFound", nil))
		return
	}
	m.style.Println(m.out, render.KindSuccess, m.t(successID, nil))
}

func (m *Menu) report(err error) {
	m.style.Println(m.out, render.KindError, clierrors.FromError(err, m.lang).Message)
}

func (m *Menu) invalidChoice() {
	m.style.Println(m.out, render.KindError, m.t("invalidChoice", nil))
	m.pause("pressEnter")
}

func (m *Menu) renderTasks(tasks []domain.Task) {
	render.Tasks(m.out, m.style, m.labels(), tasks)
}

func (m *Menu) labels() render.Labels {
	return render.Labels{
		Headers: [5]string{
			m.t("columnID", nil),
			m.t("columnDescription", nil),
			m.t("columnDeadline", nil),
			m.t("columnStatus", nil),
			m.t("columnPriority", nil),
		},
		NotAvailable: m.t("notAvailable", nil),
		NoTasks:      m.t("noTasks", nil),
	}
}

func (m *Menu) pause(id string) {
	m.ask(m.t(id, nil))
}

// ask prints prompt and returns the trimmed next line. ok is false once input is exhausted.
func (m *Menu) ask(prompt string) (string, bool) {
	if m.eof {
		return "", false
	}
	fmt.Fprint(m.out, m.style.Paint(render.KindPrompt, prompt))

	line, err := m.in.ReadString('\n')
	if err != nil {
		m.eof = true
		if line == "" {
			fmt.Fprintln(m.out)
			return "", false
		}
	}
	return strings.TrimSpace(line), true
}

func (m *Menu) t(id string, data map[string]any) string {
	msg, err := m.localizer.Localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		m.logger.Warn("translation not found", zap.String("lang", m.lang), zap.String("message_id", id), zap.Error(err))
		return id
	}
	return msg
}
