package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ka2n/mealdb/api"
	"github.com/morikuni/failure/v2"
)

const teriyakiMeal = `{"idMeal":"52772","strMeal":"Teriyaki Chicken Casserole","strCategory":"Chicken","strArea":"Japanese","strInstructions":"Some cooking instructions","strIngredient1":"Chicken","strMeasure1":"1 lb","strSource":"https://kitchen.example.com/teriyaki"}`

// routeTransport answers with the body registered for "path?query", then for "path"
type routeTransport map[string]string

func (rt routeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	body, ok := rt[req.URL.Path+"?"+req.URL.RawQuery]
	if !ok {
		body, ok = rt[req.URL.Path]
	}
	if !ok {
		return nil, errors.New("connection refused")
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

// execute runs the command tree against routes and returns stdout and stderr
func execute(t *testing.T, routes routeTransport, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd(func(baseURL string) *api.Client {
		return &api.Client{
			BaseURL:    baseURL,
			HTTPClient: &http.Client{Transport: routes},
		}
	})

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCommands_MealLists(t *testing.T) {
	seafood := `{"meals":[{"strMeal":"Baked salmon with fennel & tomatoes","idMeal":"52959"},{"strMeal":"Cajun spiced fish tacos","idMeal":"52819"}]}`
	routes := routeTransport{
		"/api/json/v1/1/search.php?s=Teriyaki":    `{"meals":[` + teriyakiMeal + `]}`,
		"/api/json/v1/1/search.php?s=nothing":     `{"meals":null}`,
		"/api/json/v1/1/filter.php?c=Seafood":     seafood,
		"/api/json/v1/1/filter.php?c=Nothing":     `{"meals":null}`,
		"/api/json/v1/1/filter.php?i=salmon":      seafood,
		"/api/json/v1/1/filter.php?i=unobtainium": `{"meals":null}`,
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "search",
			args: []string{"search", "Teriyaki"},
			want: "52772: Teriyaki Chicken Casserole\n",
		},
		{
			name: "search without results",
			args: []string{"search", "nothing"},
			want: "No meals found.\n",
		},
		{
			name: "category",
			args: []string{"category", "Seafood"},
			want: "52959: Baked salmon with fennel & tomatoes\n52819: Cajun spiced fish tacos\n",
		},
		{
			name: "category without results",
			args: []string{"category", "Nothing"},
			want: "No meals found in this category.\n",
		},
		{
			name: "filter-ingredient",
			args: []string{"filter-ingredient", "salmon"},
			want: "52959: Baked salmon with fennel & tomatoes\n52819: Cajun spiced fish tacos\n",
		},
		{
			name: "filter-ingredient without results",
			args: []string{"filter-ingredient", "unobtainium"},
			want: "No meals found with this ingredient.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, routes, tt.args...)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, stdout); diff != "" {
				t.Errorf("Output mismatch (-want +got):\n%s", diff)
			}
			if stderr != "" {
				t.Errorf("Unexpected diagnostics: %q", stderr)
			}
		})
	}
}

func TestCommands_NetworkFailure(t *testing.T) {
	stdout, stderr, err := execute(t, routeTransport{}, "search", "anything")
	if err != nil {
		t.Fatalf("Network failures must not fail the command: %v", err)
	}
	if stdout != "No meals found.\n" {
		t.Errorf("Unexpected output %q", stdout)
	}
	if stderr != api.MsgNetworkError+"\n" {
		t.Errorf("Unexpected diagnostics %q", stderr)
	}
}

func TestCommand_List(t *testing.T) {
	routes := routeTransport{
		"/api/json/v1/1/categories.php": `{"categories":[{"strCategory":"Beef"},{"strCategory":"Chicken"}]}`,
	}

	stdout, _, err := execute(t, routes, "list")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := "Available categories:\n- Beef\n- Chicken\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
	}
}

func TestCommand_Details(t *testing.T) {
	routes := routeTransport{
		"/api/json/v1/1/lookup.php?i=52772": `{"meals":[` + teriyakiMeal + `]}`,
		"/api/json/v1/1/lookup.php?i=1":     `{"meals":null}`,
	}

	stdout, _, err := execute(t, routes, "details", "52772")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"Teriyaki Chicken Casserole", "Category: Chicken | Cuisine: Japanese", "- Chicken (1 lb)", "Some cooking instructions"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, stdout)
		}
	}

	stdout, stderr, err := execute(t, routes, "details", "1")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stdout != "Error: Could not retrieve meal details.\n" {
		t.Errorf("Unexpected output %q", stdout)
	}
	if stderr != "No meal found with ID 1.\n" {
		t.Errorf("Unexpected diagnostics %q", stderr)
	}
}

func TestCommand_Random(t *testing.T) {
	routes := routeTransport{
		"/api/json/v1/1/random.php": `{"meals":[` + teriyakiMeal + `]}`,
	}

	stdout, _, err := execute(t, routes, "random")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "✨ Teriyaki Chicken Casserole ✨") {
		t.Errorf("Expected title in output, got:\n%s", stdout)
	}
}

func TestCommand_RandomMarkdown(t *testing.T) {
	routes := routeTransport{
		"/api/json/v1/1/random.php": `{"meals":[` + teriyakiMeal + `]}`,
	}

	stdout, _, err := execute(t, routes, "random", "--format", "markdown")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"Teriyaki Chicken Casserole", "Ingredients", "Chicken (1 lb)"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, stdout)
		}
	}
}

func TestCommand_InvalidFormat(t *testing.T) {
	_, _, err := execute(t, routeTransport{}, "random", "--format", "yaml")
	if err == nil {
		t.Fatal("Expected an error for an invalid format")
	}
}

func TestCommand_Arguments(t *testing.T) {
	tests := [][]string{
		{"search"},
		{"category"},
		{"details"},
		{"filter-ingredient"},
		{"details", "1", "2"},
		{"random", "extra"},
		{"list", "extra"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			if _, _, err := execute(t, routeTransport{}, args...); err == nil {
				t.Errorf("Expected an argument error")
			}
		})
	}
}

func TestCommand_DetailsBrowser(t *testing.T) {
	var opened []string
	orig := openURL
	openURL = func(u string) error {
		opened = append(opened, u)
		return nil
	}
	t.Cleanup(func() { openURL = orig })

	stdout, _, err := execute(t, routeTransport{}, "details", "52772", "--browser")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"https://www.themealdb.com/meal/52772"}, opened); diff != "" {
		t.Errorf("Opened URLs mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(stdout, "Opening meal in browser") {
		t.Errorf("Unexpected output %q", stdout)
	}
}

func TestCommand_BrowserFailure(t *testing.T) {
	orig := openURL
	openURL = func(string) error { return errors.New("no browser") }
	t.Cleanup(func() { openURL = orig })

	_, _, err := execute(t, routeTransport{}, "details", "52772", "-b")
	if !failure.Is(err, BrowserFailed) {
		t.Errorf("Expected %v, got %v", BrowserFailed, err)
	}
}

func TestCommand_Source(t *testing.T) {
	routes := routeTransport{
		"/api/json/v1/1/lookup.php?i=52772": `{"meals":[` + teriyakiMeal + `]}`,
		"/api/json/v1/1/lookup.php?i=1":     `{"meals":null}`,
		"/teriyaki": `<html><body><article><h1>Teriyaki</h1>` +
			`<p>Preheat the oven to 350 degrees and spray a baking pan. Combine the sauce ingredients and bring them to a boil.</p>` +
			`<p>Bake the chicken for thirty five minutes, shred it and return it to the pan with the rice.</p>` +
			`</article></body></html>`,
	}

	stdout, _, err := execute(t, routes, "source", "52772")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"Teriyaki Chicken Casserole", "kitchen.example.com/teriyaki", "Preheat the oven"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, stdout)
		}
	}

	_, _, err = execute(t, routes, "source", "1")
	if !failure.Is(err, MealNotFound) {
		t.Errorf("Expected %v, got %v", MealNotFound, err)
	}
}

func TestCommand_Version(t *testing.T) {
	stdout, _, err := execute(t, routeTransport{}, "version")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.HasPrefix(stdout, "mealdb version ") {
		t.Errorf("Unexpected output %q", stdout)
	}
}

func TestCommand_BaseURL(t *testing.T) {
	routes := routeTransport{
		"/mirror/categories.php": `{"categories":[{"strCategory":"Vegan"}]}`,
	}

	stdout, _, err := execute(t, routes, "--base-url", "http://mirror.local/mirror/", "list")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if stdout != "Available categories:\n- Vegan\n" {
		t.Errorf("Unexpected output %q", stdout)
	}
}
