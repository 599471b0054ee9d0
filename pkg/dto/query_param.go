package dto

type Filter struct {
	Category string `query:"category"`
}
