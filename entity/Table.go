package entity

type Table struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
	Position string `json:"position"`
}

func (t *Table) Available() bool { return t.Status == TableAvailable }
