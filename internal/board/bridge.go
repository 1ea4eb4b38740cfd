package board

import (
	"context"
	"errors"
	"fmt"

	"github.com/nissyi-gh/quadro/internal/dates"
	"github.com/nissyi-gh/quadro/internal/model"
	"github.com/nissyi-gh/quadro/internal/store"
)

// KV is the durable storage the board is saved to.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Save writes every task, grouped by column, under key. Dates are stored as
// YYYY-MM-DD; unset dates are stored as today.
func (b *Board) Save(ctx context.Context, kv KV, key string, f *dates.Formatter) error {
	groups := make([]store.Group, 0, 3)
	for _, c := range model.Columns() {
		tasks := b.tasks.Column(c)
		records := make([]store.Record, 0, len(tasks))
		for _, t := range tasks {
			records = append(records, store.Record{
				Title:       t.Title,
				Description: t.Description,
				Date:        f.Normalize(t.Date),
			})
		}
		groups = append(groups, store.Group{Column: string(c), Records: records})
	}

	data, err := store.EncodeDocument(groups)
	if err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	if err := kv.Set(ctx, key, data); err != nil {
		return fmt.Errorf("save board: %w", err)
	}
	b.logger.Info("board saved", "key", key, "tasks", b.tasks.Len())
	return nil
}

// Load appends the tasks stored under key to their original columns. A
// missing key leaves the board empty.
func (b *Board) Load(ctx context.Context, kv KV, key string) error {
	data, err := kv.Get(ctx, key)
	if errors.Is(err, store.ErrStorageEmpty) {
		b.logger.Info("no saved board", "key", key)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load board: %w", err)
	}

	groups, err := store.DecodeDocument(data)
	if err != nil {
		return fmt.Errorf("load board: %w", err)
	}
	for _, g := range groups {
		column, err := model.ParseColumn(g.Column)
		if err != nil {
			return fmt.Errorf("load board: %w", err)
		}
		for _, r := range g.Records {
			b.Add(Values{Title: r.Title, Description: r.Description, Date: r.Date}, column)
		}
	}
	b.logger.Info("board loaded", "key", key, "tasks", b.tasks.Len())
	return nil
}
