package repository

import (
	"context"
	"fmt"

	"github.com/ajrivet/tassel/internal/domain"
	"github.com/ajrivet/tassel/internal/storage"
)

// KVReminderRepo keeps all reminders in one JSON array under the
// courseReminders key.
type KVReminderRepo struct {
	store storage.Store
}

// NewKVReminderRepo creates a new KVReminderRepo.
func NewKVReminderRepo(store storage.Store) *KVReminderRepo {
	return &KVReminderRepo{store: store}
}

func (r *KVReminderRepo) List(ctx context.Context) ([]domain.Reminder, error) {
	var reminders []domain.Reminder
	if _, err := readJSON(ctx, r.store, remindersKey, &reminders); err != nil {
		return nil, fmt.Errorf("listing reminders: %w", err)
	}
	return reminders, nil
}

func (r *KVReminderRepo) ListByCourse(ctx context.Context, courseID string) ([]domain.Reminder, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []domain.Reminder
	for _, rem := range all {
		if rem.CourseID == courseID {
			out = append(out, rem)
		}
	}
	return out, nil
}

func (r *KVReminderRepo) GetByID(ctx context.Context, id string) (*domain.Reminder, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, fmt.Errorf("reminder %q not found", id)
}

func (r *KVReminderRepo) Upsert(ctx context.Context, rem *domain.Reminder) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range all {
		if all[i].ID == rem.ID {
			all[i] = *rem
			replaced = true
			break
		}
	}
	if !replaced {
		all = append(all, *rem)
	}
	if err := writeJSON(ctx, r.store, remindersKey, all); err != nil {
		return fmt.Errorf("saving reminders: %w", err)
	}
	return nil
}

func (r *KVReminderRepo) Delete(ctx context.Context, id string) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, rem := range all {
		if rem.ID != id {
			kept = append(kept, rem)
		}
	}
	if len(kept) == len(all) {
		return fmt.Errorf("reminder %q not found", id)
	}
	if err := writeJSON(ctx, r.store, remindersKey, kept); err != nil {
		return fmt.Errorf("saving reminders: %w", err)
	}
	return nil
}

func (r *KVReminderRepo) DeleteByCourse(ctx context.Context, courseID string) error {
	all, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := all[:0]
	for _, rem := range all {
		if rem.CourseID != courseID {
			kept = append(kept, rem)
		}
	}
	if err := writeJSON(ctx, r.store, remindersKey, kept); err != nil {
		return fmt.Errorf("saving reminders: %w", err)
	}
	return nil
}
