package store

import "context"

// ExecRaw lets tests plant rows the public API would never write.
func ExecRaw(s *SQLiteStore, query string, args ...any) error {
	_, err := s.db.ExecContext(context.Background(), query, args...)
	return err
}
