// Package i18n holds the board's interface strings.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs.
const (
	ModalAddTitle    = "ModalAddTitle"
	ModalAddConfirm  = "ModalAddConfirm"
	ModalEditTitle   = "ModalEditTitle"
	ModalEditConfirm = "ModalEditConfirm"
	ModalCancel      = "ModalCancel"
	ColumnTodo       = "ColumnTodo"
	ColumnDone       = "ColumnDone"
	ColumnPendent    = "ColumnPendent"
	FieldTitle       = "FieldTitle"
	FieldDescription = "FieldDescription"
	FieldDate        = "FieldDate"
	TitleRequired    = "TitleRequired"
	DateInvalid      = "DateInvalid"
	DateBeforeMin    = "DateBeforeMin"
	ConfirmDelete    = "ConfirmDelete"
	ConfirmHint      = "ConfirmHint"
	FormHint         = "FormHint"
	EmptyColumn      = "EmptyColumn"
	Copied           = "Copied"
	PromptCopied     = "PromptCopied"
	TasksImported    = "TasksImported"

	HelpAdd        = "HelpAdd"
	HelpEdit       = "HelpEdit"
	HelpDelete     = "HelpDelete"
	HelpAdvance    = "HelpAdvance"
	HelpDetails    = "HelpDetails"
	HelpPrevColumn = "HelpPrevColumn"
	HelpNextColumn = "HelpNextColumn"
	HelpUp         = "HelpUp"
	HelpDown       = "HelpDown"
	HelpCopy       = "HelpCopy"
	HelpPrompt     = "HelpPrompt"
	HelpImport     = "HelpImport"
	HelpHelp       = "HelpHelp"
	HelpQuit       = "HelpQuit"
)

//go:embed locales/*.toml
var locales embed.FS

// Translator localizes message IDs for one language.
type Translator struct {
	localizer *i18n.Localizer
}

// New loads the embedded catalogs and returns a translator for lang,
// falling back to pt-BR.
func New(lang string) (*Translator, error) {
	bundle := i18n.NewBundle(language.BrazilianPortuguese)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := locales.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}
	for _, f := range files {
		name := path.Join("locales", f.Name())
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
	}

	return &Translator{localizer: i18n.NewLocalizer(bundle, lang, "pt-BR")}, nil
}

// T returns the message for id, or id itself when it is unknown.
func (t *Translator) T(id string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}

// Count returns the plural form of id for n.
func (t *Translator) Count(id string, n int) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  n,
		TemplateData: map[string]any{"Count": n},
	})
	if err != nil {
		return id
	}
	return msg
}
