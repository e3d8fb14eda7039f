package types

type TableName string

func (t TableName) Name() string {
	return string(t)
}

const (
	TABLE_USER         TableName = "dd_user"
	TABLE_ACCESS_TOKEN TableName = "dd_access_token"
	TABLE_ENTRY        TableName = "dd_entry"
)
