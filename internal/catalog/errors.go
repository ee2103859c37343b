package catalog

import "errors"

// Kind категория отказа операции каталога
type Kind int

// Категории отказов. Каждая операция возвращает структурированную ошибку
// с одной из этих категорий — наверх никогда не поднимается паника.
const (
	KindValidation Kind = iota + 1 // Некорректное поле или запрещенный код
	KindAuth                       // Отсутствующий или неподтвержденный токен
	KindOwnership                  // Трек существует, но принадлежит другому агенту
	KindNotFound                   // Трек с таким ID не найден
	KindStorage                    // Ошибка записи хранилища
)

// Error структурированная ошибка операции каталога
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// newError создает ошибку каталога указанной категории
func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// wrapError создает ошибку каталога, сохраняя исходную причину
func wrapError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf возвращает категорию ошибки каталога или 0 для посторонних ошибок
func KindOf(err error) Kind {
	var catErr *Error
	if errors.As(err, &catErr) {
		return catErr.Kind
	}
	return 0
}
