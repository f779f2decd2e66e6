package gateway

import (
	"context"

	"github.com/crestline/showroom/internal/dealer"
	"github.com/crestline/showroom/internal/inventory"
	"github.com/crestline/showroom/internal/tradein"
)

// demoFleet is the starter lot used when the gateway boots with an empty
// inventory database, so a freshly installed kiosk has something to show.
var demoFleet = []dealer.Vehicle{
	{VIN: "1GCUYDED5KZ100001", Year: 2025, Make: "Chevrolet", Model: "Silverado 1500", Trim: "LT", Color: "Summit White", MSRP: 48300, Status: "in_stock", StockNo: "C25-0001"},
	{VIN: "1GCUYDED5KZ100002", Year: 2025, Make: "Chevrolet", Model: "Silverado 1500", Trim: "RST", Color: "Black", MSRP: 53900, Status: "in_stock", StockNo: "C25-0002"},
	{VIN: "1GC4YLE75KF100003", Year: 2025, Make: "Chevrolet", Model: "Silverado 2500HD", Trim: "LTZ", Color: "Silver Ice Metallic", MSRP: 62400, Status: "in_transit", StockNo: "C25-0003"},
	{VIN: "1GCGTCEN5K1100004", Year: 2024, Make: "Chevrolet", Model: "Colorado", Trim: "Z71", Color: "Radiant Red Tintcoat", MSRP: 41200, Status: "in_stock", StockNo: "C24-0104"},
	{VIN: "1GNSKCKC5KR100005", Year: 2025, Make: "Chevrolet", Model: "Tahoe", Trim: "Premier", Color: "Black", MSRP: 64900, Status: "in_stock", StockNo: "C25-0005"},
	{VIN: "1GNSKJKC5KR100006", Year: 2025, Make: "Chevrolet", Model: "Suburban", Trim: "LT", Color: "Summit White", MSRP: 62100, Status: "in_stock", StockNo: "C25-0006"},
	{VIN: "1GNEVGKW5KJ100007", Year: 2024, Make: "Chevrolet", Model: "Traverse", Trim: "RS", Color: "Lakeshore Blue Metallic", MSRP: 47800, Status: "in_stock", StockNo: "C24-0107"},
	{VIN: "3GNAXUEG5PL100008", Year: 2025, Make: "Chevrolet", Model: "Equinox", Trim: "LT", Color: "Cacti Green", MSRP: 31100, Status: "in_stock", StockNo: "C25-0008"},
	{VIN: "3GNAXUEG5PL100009", Year: 2025, Make: "Chevrolet", Model: "Equinox", Trim: "ACTIV", Color: "Summit White", MSRP: 34500, Status: "sold", StockNo: "C25-0009"},
	{VIN: "KL79MTSL5PB100010", Year: 2025, Make: "Chevrolet", Model: "Trailblazer", Trim: "LT", Color: "Mosaic Black Metallic", MSRP: 26200, Status: "in_stock", StockNo: "C25-0010"},
	{VIN: "1G1ZD5ST5KF100011", Year: 2024, Make: "Chevrolet", Model: "Malibu", Trim: "RS", Color: "Sterling Gray Metallic", MSRP: 26900, Status: "in_stock", StockNo: "C24-0111"},
	{VIN: "1G1YB2D45K5100012", Year: 2025, Make: "Chevrolet", Model: "Corvette Stingray", Trim: "2LT", Color: "Torch Red", MSRP: 74500, Status: "in_stock", StockNo: "C25-0012"},
	{VIN: "3GNKDCRJ5PS100013", Year: 2025, Make: "Chevrolet", Model: "Blazer EV", Trim: "RS", Color: "Riptide Blue Metallic", MSRP: 54200, Status: "in_stock", StockNo: "C25-0013"},
	{VIN: "1GC1YNEL5KF100014", Year: 2025, Make: "Chevrolet", Model: "Silverado EV", Trim: "RST", Color: "Summit White", MSRP: 72900, Status: "in_transit", StockNo: "C25-0014"},
}

// decodeTable answers VIN decodes for vehicles that are not on the lot.
// Stands in for the national decode service.
var decodeTable = map[string]tradein.DecodedVehicle{
	"2GNFLFEK5H6200001": {Year: "2017", Make: "Chevrolet", Model: "Equinox", Trim: "LT"},
	"1GCVKREC5JZ200002": {Year: "2018", Make: "Chevrolet", Model: "Silverado 1500", Trim: "LT"},
	"1FTEW1EP5KF200003": {Year: "2019", Make: "Ford", Model: "F-150", Trim: "XLT"},
	"5YJ3E1EA5KF200004": {Year: "2019", Make: "Tesla", Model: "Model 3"},
	"2T3P1RFV5KC200005": {Year: "2019", Make: "Toyota", Model: "RAV4", Trim: "XLE"},
}

// SeedStore loads the demo fleet into an empty inventory store. A store
// that already holds a snapshot is left alone.
func SeedStore(ctx context.Context, store *inventory.Store) error {
	empty, err := store.Empty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	return store.ReplaceAll(ctx, demoFleet)
}
