// groop-admin/models/teacher.go
package models

import "strings"

// TeacherUser - вложенные данные пользователя преподавателя.
type TeacherUser struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// Teacher - элемент списка GET /v1/teachers.
type Teacher struct {
	ID        int          `json:"id"`
	Specialty string       `json:"specialty"`
	User      *TeacherUser `json:"user"`
}

// Label собирает подпись вида "Имя Фамилия (специальность)".
// Отсутствующие части опускаются.
func (t Teacher) Label() string {
	parts := make([]string, 0, 3)
	if t.User != nil {
		if t.User.FirstName != "" {
			parts = append(parts, t.User.FirstName)
		}
		if t.User.LastName != "" {
			parts = append(parts, t.User.LastName)
		}
	}
	if t.Specialty != "" {
		parts = append(parts, "("+t.Specialty+")")
	}
	return strings.Join(parts, " ")
}

// TeacherOption - элемент выпадающего списка преподавателей в форме.
type TeacherOption struct {
	Value int    `json:"value"`
	Title string `json:"title"`
}
