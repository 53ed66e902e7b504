package tui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/folio/internal/document"
	"github.com/ionut-t/folio/internal/menu"
	"github.com/ionut-t/folio/tui/prompt"
	"go.uber.org/zap"
)

var errNoPrinter = errors.New("no print command (lpr) found")

// execute runs a menu command. h is nil on the start page.
func (m *model) execute(h *host, id menu.CommandID) tea.Cmd {
	m.logger.Debug("command", zap.Int("id", int(id)))

	switch id {
	case menu.IDOpen:
		return m.openPrompt(prompt.OpenFileAction, "")
	case menu.IDExit:
		return tea.Quit
	case menu.IDKeyboardHelp:
		m.showHelp()
		return nil
	case menu.IDAbout:
		m.dialog = m.renderAbout()
		return nil
	case menu.IDDebugDumpMenu:
		return m.dumpMenu()
	}

	if h == nil {
		return nil
	}

	w := h.w

	switch {
	case menu.ZoomRange.Contains(id):
		m.menus.OnMenuZoom(h, id)
		return nil
	case menu.LayoutRange.Contains(id):
		m.menus.OnMenuLayout(h, id)
		return nil
	}

	switch id {
	case menu.IDClose:
		m.closeWindow(w)

	case menu.IDSaveAs:
		m.saveAsWindow = w
		return m.openPrompt(prompt.SaveAsAction, w.doc.Path)

	case menu.IDPrint:
		return printDocument(w.doc.Path)

	case menu.IDProperties:
		m.dialog = renderProperties(w.doc)

	case menu.IDCopyPath:
		return m.copyToClipboard(w.doc.Path, "Path copied to clipboard")

	case menu.IDViewFullscreen:
		w.fullscreen = !w.fullscreen
		m.updateSize()

	case menu.IDViewBookmarks:
		w.toc = !w.toc
		w.render()

	case menu.IDViewToolbar:
		w.toolbar = !w.toolbar
		m.updateSize()

	case menu.IDSelectAll:
		w.selectAll()

	case menu.IDCopySelection:
		if w.selection == "" {
			return nil
		}
		return m.copyToClipboard(w.selection, "Selection copied to clipboard")

	case menu.IDGotoNextPage:
		w.nextPage()
	case menu.IDGotoPrevPage:
		w.prevPage()
	case menu.IDGotoFirstPage:
		w.gotoPage(1)
	case menu.IDGotoLastPage:
		w.gotoPage(w.pages)
	case menu.IDGotoPage:
		m.gotoWindow = w
		return m.openPrompt(prompt.GotoPageAction, fmt.Sprint(w.page))
	case menu.IDGotoBack:
		w.goBack()
	case menu.IDGotoForward:
		w.goForward()

	case menu.IDDebugHighlightLinks:
		w.highlightLinks = !w.highlightLinks
		w.render()
		return m.successNotification("Highlight links " + toggleStatus(w.highlightLinks))
	}

	return nil
}

// enabled reports whether id is an enabled command of the current menu bar.
// Keyboard shortcuts only run enabled commands.
func (m *model) enabled(id menu.CommandID) bool {
	live := m.liveMenu()
	m.syncMenu()

	it, ok := menu.Find(live, id)
	return ok && it.Enabled()
}

func (m *model) copyToClipboard(text, success string) tea.Cmd {
	if err := m.copy(text); err != nil {
		return m.errorNotification(err)
	}
	return m.successNotification(success)
}

func (m *model) dumpMenu() tea.Cmd {
	live := m.liveMenu()
	m.syncMenu()

	tree := menu.FormatTree(menu.Snapshot(live))
	m.logger.Info("menu dump", zap.Int("commands", menu.Count(live)), zap.String("tree", tree))

	return m.successNotification(fmt.Sprintf("Menu state (%d commands) written to the log", menu.Count(live)))
}

func printDocument(path string) tea.Cmd {
	return func() tea.Msg {
		lpr, err := exec.LookPath("lpr")
		if err != nil {
			return printedMsg{path: path, err: errNoPrinter}
		}

		out, err := exec.Command(lpr, path).CombinedOutput()
		if err != nil {
			return printedMsg{path: path, err: fmt.Errorf("%w: %s", err, out)}
		}

		return printedMsg{path: path}
	}
}

func saveAs(src, dst string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(src)
		if err != nil {
			return savedMsg{path: dst, err: err}
		}

		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return savedMsg{path: dst, err: err}
		}

		return savedMsg{path: dst}
	}
}

func openDocument(path string) tea.Cmd {
	return func() tea.Msg {
		doc, err := document.Open(path)
		if err != nil {
			return documentFailedMsg{path: path, err: err}
		}
		return documentOpenedMsg{doc: doc}
	}
}
