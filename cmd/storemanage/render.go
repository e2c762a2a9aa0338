package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jhoicas/storemanage/internal/application/dto"
	"github.com/jhoicas/storemanage/internal/application/storemanage"
)

func renderTables(w io.Writer, st storemanage.State) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if st.Store != nil {
		fmt.Fprintf(tw, "TIENDA\t%s\t%s\n", st.Store.ID, st.Store.Name)
		if st.Store.Address != "" {
			fmt.Fprintf(tw, "DIRECCIÓN\t%s\n", st.Store.Address)
		}
	}
	fmt.Fprintln(tw)
	writeStocks(tw, "STOCKS DE LA TIENDA", st.Stocks)
	fmt.Fprintln(tw)
	writeStocks(tw, "DISPONIBLES", st.Available)
	return tw.Flush()
}

func writeStocks(tw *tabwriter.Writer, title string, list []dto.StockResponse) {
	fmt.Fprintf(tw, "%s (%d)\n", title, len(list))
	if len(list) == 0 {
		fmt.Fprintln(tw, "  -")
		return
	}
	fmt.Fprintln(tw, "  ID\tNOMBRE\tDIRECCIÓN\tCAPACIDAD")
	for _, s := range list {
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", s.ID, s.Name, s.Address, s.Capacity.String())
	}
}

type stateJSON struct {
	Store     *dto.StoreResponse  `json:"store"`
	Stocks    []dto.StockResponse `json:"stocks"`
	Available []dto.StockResponse `json:"available"`
}

func renderJSON(w io.Writer, st storemanage.State) error {
	out := stateJSON{Store: st.Store, Stocks: st.Stocks, Available: st.Available}
	if out.Stocks == nil {
		out.Stocks = []dto.StockResponse{}
	}
	if out.Available == nil {
		out.Available = []dto.StockResponse{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
