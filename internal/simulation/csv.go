package simulation

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

var ledgerHeader = []string{
	"hour",
	"action",
	"pv_generation_kwh",
	"total_load_kwh",
	"household_load_kwh",
	"factory_load_kwh",
	"public_load_kwh",
	"ev_load_kwh",
	"net_generation_kwh",
	"household_charge_kwh",
	"household_discharge_kwh",
	"shared_charge_kwh",
	"shared_discharge_kwh",
	"household_battery_level_kwh",
	"shared_battery_level_kwh",
	"grid_purchase_kwh",
	"grid_sell_kwh",
}

func WriteLedgerCSV(path string, ledger []HourlyResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := EncodeLedgerCSV(f, ledger); err != nil {
		return err
	}
	return f.Close()
}

// EncodeLedgerCSV writes a header row followed by one row per hour.
func EncodeLedgerCSV(out io.Writer, ledger []HourlyResult) error {
	w := csv.NewWriter(out)

	if err := w.Write(ledgerHeader); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.Hour),
			string(r.Action),
			fmtFloat(r.PVGeneration),
			fmtFloat(r.TotalLoad),
			fmtFloat(r.HouseholdLoad),
			fmtFloat(r.FactoryLoad),
			fmtFloat(r.PublicLoad),
			fmtFloat(r.EVLoad),
			fmtFloat(r.NetGeneration),
			fmtFloat(r.HouseholdCharge),
			fmtFloat(r.HouseholdDischarge),
			fmtFloat(r.SharedCharge),
			fmtFloat(r.SharedDischarge),
			fmtFloat(r.HouseholdBatteryLevel),
			fmtFloat(r.SharedBatteryLevel),
			fmtFloat(r.GridPurchase),
			fmtFloat(r.GridSell),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
