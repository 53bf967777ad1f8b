package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/rohit-nambiar/coverscout/internal/advisor"
	"github.com/rohit-nambiar/coverscout/internal/database"
	"github.com/rohit-nambiar/coverscout/internal/recommend"
)

// Table writes data as a formatted table to stdout
func Table(data interface{}) error {
	return TableTo(os.Stdout, data)
}

// TableTo writes data as a formatted table to the given writer
func TableTo(w io.Writer, data interface{}) error {
	switch v := data.(type) {
	case *advisor.Advice:
		return adviceDetail(w, v)
	case []advisor.ClientSummary:
		return clientsTable(w, v)
	case []recommend.Product:
		return productsTable(w, v)
	case advisor.MatrixInfo:
		return matrixDetail(w, v)
	case *database.DatasetInfo:
		return datasetDetail(w, v)
	default:
		return fmt.Errorf("unsupported data type for table output: %T", data)
	}
}

func adviceDetail(w io.Writer, a *advisor.Advice) error {
	fmt.Fprintf(w, "Client:        %s\n", a.Profile.ClientID)
	fmt.Fprintf(w, "Age:           %d\n", a.Profile.Age)
	fmt.Fprintf(w, "Life Stage:    %s\n", a.Profile.LifeStage)
	fmt.Fprintf(w, "Vehicle Owner: %s\n", yesNo(a.Profile.VehicleOwner))

	fmt.Fprintln(w)
	if len(a.Categories) == 0 {
		fmt.Fprintln(w, "No coverage categories recommended for this profile.")
		return nil
	}

	names := make([]string, len(a.Categories))
	for i, c := range a.Categories {
		names[i] = string(c)
	}
	fmt.Fprintf(w, "Recommended Coverage: %s\n", strings.Join(names, ", "))

	fmt.Fprintln(w)
	if len(a.Products) == 0 {
		fmt.Fprintln(w, "No catalog products match the recommended coverage.")
	} else {
		fmt.Fprintln(w, "Suggested Products:")
		for i, m := range a.Products {
			fmt.Fprintf(w, "  %d. %s (%s) matches %d\n", i+1, m.Product.Description, m.Product.Code, m.Score)
			fmt.Fprintf(w, "     %s\n", m.Explanation)
		}
	}

	fmt.Fprintln(w)
	if a.CollabStatus == advisor.CollabInsufficientData {
		fmt.Fprintln(w, "Similar-client suggestions unavailable: not enough purchase data.")
	} else {
		fmt.Fprintln(w, "Clients like this one also bought:")
		for i, cp := range a.Collaborative {
			fmt.Fprintf(w, "  %d. %s (%s) demand %.1f\n", i+1, cp.Description, cp.Code, cp.Score)
		}
	}

	return nil
}

func clientsTable(w io.Writer, clients []advisor.ClientSummary) error {
	if len(clients) == 0 {
		fmt.Fprintln(w, "No clients loaded.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("ID", "Birth Year", "Age", "Life Stage", "Vehicle", "Total Spend")

	for _, c := range clients {
		stage := c.LifeStage
		if stage == "" {
			stage = "-"
		}
		row := []string{
			c.ID,
			strconv.Itoa(c.BirthYear),
			strconv.Itoa(c.Age),
			stage,
			yesNo(c.VehicleOwner),
			fmt.Sprintf("%.2f", c.TotalSpend),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}

	return table.Render()
}

func productsTable(w io.Writer, products []recommend.Product) error {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products loaded.")
		return nil
	}

	table := tablewriter.NewTable(w)
	table.Header("Code", "Description", "Insurance Types")

	for _, p := range products {
		types := strings.Join(p.Types, ", ")
		if types == "" {
			types = "-"
		}
		if err := table.Append([]string{p.Code, p.Description, types}); err != nil {
			return err
		}
	}

	return table.Render()
}

func matrixDetail(w io.Writer, info advisor.MatrixInfo) error {
	if !info.Present {
		fmt.Fprintln(w, "Interaction matrix: absent")
		fmt.Fprintln(w, "No product codes appear as purchase columns on the client table,")
		fmt.Fprintln(w, "so similar-client suggestions are disabled for this dataset.")
		return nil
	}

	fmt.Fprintln(w, "Interaction matrix: present")
	fmt.Fprintf(w, "Clients:  %d\n", info.Rows)
	fmt.Fprintf(w, "Products: %d (%s)\n", len(info.Columns), strings.Join(info.Columns, ", "))
	return nil
}

func datasetDetail(w io.Writer, info *database.DatasetInfo) error {
	fmt.Fprintf(w, "Clients:          %d\n", info.Clients)
	fmt.Fprintf(w, "Products:         %d\n", info.Products)
	fmt.Fprintf(w, "Purchase Columns: %d\n", info.PurchaseColumns)

	if info.Source != "" {
		fmt.Fprintf(w, "Source:           %s\n", info.Source)
	}
	if info.ImportedAt != nil {
		fmt.Fprintf(w, "Imported:         %s\n", info.ImportedAt.Format("Jan 02, 2006 15:04"))
	}

	return nil
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
