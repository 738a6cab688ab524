package domain

type DocumentSource interface {
	Load() (*Document, error)
}

type RowWriter interface {
	WriteRows(rows []Row) error
}
