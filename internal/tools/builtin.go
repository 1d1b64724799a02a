package tools

import (
	"context"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/DjordjeVuckovic/genai-lab/internal/apperr"
)

const (
	CalculatorTool    = "calculator"
	CurrentTimeTool   = "current_time"
	WeatherTool       = "weather"
	OrderStatusTool   = "order_status"
	CancelOrderTool   = "cancel_order"
	ChangeAddressTool = "change_delivery_address"

	TimeLayout = "2006-01-02 15:04:05"
)

type CalculatorArgs struct {
	Operation string  `json:"operation" jsonschema:"enum=add,enum=subtract,enum=multiply,enum=divide,description=Arithmetic operation"`
	A         float64 `json:"a" jsonschema:"description=First operand"`
	B         float64 `json:"b" jsonschema:"description=Second operand"`
}

type CalculatorResult struct {
	Result    float64 `json:"result"`
	Operation string  `json:"operation"`
}

func Calculate(args CalculatorArgs) (CalculatorResult, error) {
	op := strings.ToLower(strings.TrimSpace(args.Operation))
	var result float64
	switch op {
	case "add", "+":
		result = args.A + args.B
	case "subtract", "-":
		result = args.A - args.B
	case "multiply", "*":
		result = args.A * args.B
	case "divide", "/":
		if args.B == 0 {
			return CalculatorResult{}, apperr.NewValidation("division by zero is not allowed")
		}
		result = args.A / args.B
	default:
		return CalculatorResult{}, apperr.NewValidation(fmt.Sprintf("unknown operation %q, supported: add, subtract, multiply, divide", args.Operation))
	}
	return CalculatorResult{Result: result, Operation: op}, nil
}

type TimeArgs struct {
	Timezone string `json:"timezone,omitempty" jsonschema:"description=IANA time zone such as Asia/Seoul or America/New_York"`
}

type TimeResult struct {
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

// CurrentTime formats now in the requested zone. Unknown zones fall back to local time.
func CurrentTime(args TimeArgs, now time.Time) TimeResult {
	loc := time.Local
	if args.Timezone != "" {
		if l, err := time.LoadLocation(args.Timezone); err == nil {
			loc = l
		}
	}
	return TimeResult{Time: now.In(loc).Format(TimeLayout), Timezone: loc.String()}
}

type WeatherArgs struct {
	Location string `json:"location" jsonschema:"description=City name such as Seoul or Busan"`
}

type Weather struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
}

var weatherTable = map[string]Weather{
	"seoul":   {Location: "Seoul", Temperature: 15.0, Description: "clear", Humidity: 60},
	"busan":   {Location: "Busan", Temperature: 18.0, Description: "cloudy", Humidity: 70},
	"jeju":    {Location: "Jeju", Temperature: 20.0, Description: "clear", Humidity: 65},
	"daegu":   {Location: "Daegu", Temperature: 16.0, Description: "clear", Humidity: 55},
	"incheon": {Location: "Incheon", Temperature: 14.0, Description: "cloudy", Humidity: 75},
	"gwangju": {Location: "Gwangju", Temperature: 17.0, Description: "clear", Humidity: 58},
	"daejeon": {Location: "Daejeon", Temperature: 15.5, Description: "clear", Humidity: 62},
	"suwon":   {Location: "Suwon", Temperature: 14.5, Description: "cloudy", Humidity: 68},
}

// LookupWeather returns mock weather. Unknown cities report "no data".
func LookupWeather(location string) Weather {
	if w, ok := weatherTable[strings.ToLower(strings.TrimSpace(location))]; ok {
		return w
	}
	return Weather{Location: location, Description: "no data"}
}

// Builtins returns the calculator, clock, weather and order tools. clock may be nil.
// The order tools share one OrderBook seeded with the sample orders.
func Builtins(clock func() time.Time) []Tool {
	return BuiltinsWithOrders(clock, NewOrderBook())
}

func BuiltinsWithOrders(clock func() time.Time, book *OrderBook) []Tool {
	if clock == nil {
		clock = time.Now
	}
	return []Tool{
		New(CalculatorTool, "Perform basic arithmetic on two numbers: add, subtract, multiply or divide.",
			func(_ context.Context, a CalculatorArgs) (any, error) {
				return Calculate(a)
			}),
		New(CurrentTimeTool, "Return the current date and time, optionally in a given time zone.",
			func(_ context.Context, a TimeArgs) (any, error) {
				return CurrentTime(a, clock()), nil
			}),
		New(WeatherTool, "Get the current weather for a city.",
			func(_ context.Context, a WeatherArgs) (any, error) {
				return LookupWeather(a.Location), nil
			}),
		New(OrderStatusTool, "Look up the status, items and delivery address of an order by its ID, for example ORD-001.",
			func(_ context.Context, a OrderArgs) (any, error) {
				return book.Status(a.OrderID), nil
			}),
		New(ChangeAddressTool, "Change the delivery address of an existing order. Requires the order ID and the new address.",
			func(_ context.Context, a AddressChangeArgs) (any, error) {
				return book.ChangeAddress(a.OrderID, a.NewAddress), nil
			}),
		New(CancelOrderTool, "Cancel an order by its ID. A cancelled order is removed.",
			func(_ context.Context, a OrderArgs) (any, error) {
				return book.Cancel(a.OrderID), nil
			}),
	}
}

// NewBuiltinRegistry returns a registry holding Builtins.
func NewBuiltinRegistry(clock func() time.Time) *Registry {
	r := NewRegistry()
	if err := r.Register(Builtins(clock)...); err != nil {
		panic(err)
	}
	return r
}
