package view

import "github.com/amaumene/moviemood/internal/controller"

// Multi forwards every call to each view in order. Nil views are skipped.
type Multi []controller.View

func (m Multi) SetActive(sel controller.Selection) {
	for _, v := range m {
		if v != nil {
			v.SetActive(sel)
		}
	}
}

func (m Multi) ShowGrid(state controller.GridState) {
	for _, v := range m {
		if v != nil {
			v.ShowGrid(state)
		}
	}
}

func (m Multi) ShowDetail(state controller.DetailState) {
	for _, v := range m {
		if v != nil {
			v.ShowDetail(state)
		}
	}
}
