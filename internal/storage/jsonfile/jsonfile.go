// Package jsonfile реализует хранилище данных в JSON-файлах
// для управления пользователями и историей переводов.
// Каждая мутация перечитывает файл целиком, применяет изменение в памяти
// и атомарно заменяет файл через запись во временный файл и переименование.
// Читатель всегда видит либо старое, либо новое состояние целиком.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	usersFile   = "users.json"
	historyFile = "history.json"
)

// Storage инкапсулирует каталог с файлами данных и реализует
// методы работы с пользователями и историей переводов.
//
// Мьютекс сериализует мутации внутри одного процесса; между процессами
// гонка чтение-изменение-запись остается (потерянное обновление),
// это задокументированное ограничение развертывания в один процесс.
type Storage struct {
	dir string
	mu  sync.Mutex
}

// New создает каталог данных при необходимости и инициализирует
// отсутствующие файлы пустыми значениями.
func New(dir string) (*Storage, error) {
	const op = "storage.jsonfile.New"

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s := &Storage{dir: dir}
	if err := s.seed(usersFile, []byte("[]")); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := s.seed(historyFile, []byte("{}")); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// Dir возвращает каталог данных хранилища.
func (s *Storage) Dir() string {
	return s.dir
}

func (s *Storage) seed(name string, initial []byte) error {
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return writeFileAtomic(path, initial)
}

func (s *Storage) path(name string) string {
	return filepath.Join(s.dir, name)
}

// readJSON читает файл целиком и декодирует его в v.
// Нечитаемый или поврежденный файл — фатальная ошибка для вызывающего:
// хранилище не имеет права угадывать данные пользователей.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// writeJSONAtomic сериализует v и атомарно заменяет файл.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return writeFileAtomic(path, data)
}

// writeFileAtomic пишет данные во временный файл рядом с целевым
// и переименовывает его поверх целевого. При падении процесса между
// шагами исходный файл остается нетронутым.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(tmp), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", filepath.Base(tmp), err)
	}
	return nil
}
