package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/limaJavier/timetable-generator/pkg/generator"
	"github.com/limaJavier/timetable-generator/pkg/model"
	"github.com/samber/lo"
)

const (
	exitFound      = 10
	exitImpossible = 20
)

var (
	validFormats = []string{"json", "csv"}
	sortModes    = map[string]generator.SortMode{
		"default":           generator.SortDefault,
		"sortbywaitingtime": generator.SortByWaitingTime,
		"minimizeclassdays": generator.MinimizeClassDays,
	}
	inputReaders = map[string]func(string) (model.Input, error){
		".json": model.InputFromJson,
		".yaml": model.InputFromYaml,
		".yml":  model.InputFromYaml,
	}
)

type componentOutput struct {
	Kind      string `json:"kind"`
	Id        string `json:"id"`
	Days      string `json:"days"`
	Time      string `json:"time"`
	Duration  string `json:"duration"`
	StartDate int64  `json:"startDate"`
	EndDate   int64  `json:"endDate"`
}

type resultOutput struct {
	Impossible bool                           `json:"impossible"`
	Truncated  bool                           `json:"truncated"`
	Overridden bool                           `json:"overridden"`
	Timetables []map[string][]componentOutput `json:"timetables"`
}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file (.json, .yaml or .yml) holding courses, pinned components and blocked time slots")
	catalogPathPtr := flag.String("catalog", "", "Path to a CSV catalog replacing the courses of the input file")
	sortPtr := flag.String("sort", "default", `Order of the generated timetables. Allowed values are:
- "default" (generation order),
- "sortByWaitingTime" (least idle time between classes first, then fewest class days) and
- "minimizeClassDays" (fewest class days first)`)
	limitPtr := flag.Int("limit", 0, "Maximum number of combinations to expand; if 0, the configured value (50000 by default) is used")
	configPathPtr := flag.String("config", "", "Path to a config.json file; if empty, the config.json next to the executable is used when present")
	formatPtr := flag.String("format", "json", "Output format. Allowed values are: \"json\" and \"csv\", where \"json\" is the default")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	verbosePtr := flag.Bool("verbose", false, "Log truncation and override warnings into the Standard Error")
	flag.Parse()
	filePath := *filePathPtr
	format := strings.ToLower(*formatPtr)
	outFile := *outFilePathPtr

	// Validate arguments
	sortMode, validSort := sortModes[strings.ToLower(*sortPtr)]
	readInput, validExtension := inputReaders[strings.ToLower(path.Ext(filePath))]
	if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if !validExtension {
		log.Fatalf("%v is not a supported input file, expected one of %v", filePath, lo.Keys(inputReaders))
	} else if !validSort {
		log.Fatalf("%v is not a valid sort mode", *sortPtr)
	} else if !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid format", format)
	} else if *limitPtr < 0 {
		log.Fatalf("limit must not be negative: %v", *limitPtr)
	}

	// Extract input
	input, err := readInput(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}
	if *catalogPathPtr != "" {
		catalogFile, err := os.Open(*catalogPathPtr)
		if err != nil {
			log.Fatalf("cannot open catalog file: %v", err)
		}
		catalog, err := model.CatalogFromCsv(catalogFile)
		catalogFile.Close()
		if err != nil {
			log.Fatalf("cannot parse catalog file: %v", err)
		}
		input = input.WithCatalog(catalog)
	}

	// Initialize engine
	config := loadConfig(*configPathPtr)
	if *limitPtr > 0 {
		config.MaxCombinations = *limitPtr
	}
	notifier := generator.NopNotifier()
	if *verbosePtr {
		notifier = generator.NewLogNotifier(log.New(os.Stderr, "", log.LstdFlags))
	}
	timetabler := generator.NewBoundedTimetabler(config, notifier)

	// Generate timetables
	result := timetabler.Generate(input, sortMode)

	// Verify timetables correctness
	if !result.Impossible && !lo.EveryBy(result.Timetables, generator.IsTimetableValid) {
		log.Fatal("verification failed: a generated timetable contains colliding components")
	}

	// Build output from result
	var output bytes.Buffer
	if format == "csv" {
		if err := model.TimetablesToCsv(result.Timetables, &output); err != nil {
			log.Fatalf("an error occurred while building output csv: %v", err)
		}
	} else {
		resultJson, err := json.Marshal(toOutput(result))
		if err != nil {
			log.Fatalf("an error occurred while building output json: %v", err)
		}
		output.Write(resultJson)
		output.WriteString("\n")
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Print(output.String())
	} else {
		err := os.WriteFile(outFile, output.Bytes(), 0666)
		if err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	if result.Impossible {
		os.Exit(exitImpossible)
	}
	os.Exit(exitFound)
}

// loadConfig reads the given config file, or the config.json next to the executable when none is given
func loadConfig(configPath string) generator.Config {
	if configPath == "" {
		execPath, err := os.Executable()
		if err != nil {
			log.Fatalf("cannot determine executable path: %v", err)
		}
		configPath = path.Join(path.Dir(execPath), "config.json")
		if _, err := os.Stat(configPath); err != nil {
			return generator.DefaultConfig()
		}
	}

	config, err := generator.ConfigFromJson(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}
	return config
}

func toOutput(result generator.Result) resultOutput {
	output := resultOutput{
		Impossible: result.Impossible,
		Truncated:  result.Truncated,
		Overridden: result.Overridden,
		Timetables: make([]map[string][]componentOutput, 0, len(result.Timetables)),
	}

	// Each timetable maps course codes to their scheduled components
	for _, timetable := range result.Timetables {
		perCourse := make(map[string][]componentOutput)
		for _, combination := range timetable {
			perCourse[combination.CourseCode] = lo.Map(combination.Components(), func(component model.Component, _ int) componentOutput {
				return componentOutput{
					Kind:      string(component.Kind),
					Id:        component.Id,
					Days:      component.Schedule.Days,
					Time:      component.Schedule.Time,
					Duration:  component.Schedule.Duration,
					StartDate: component.Schedule.StartDate,
					EndDate:   component.Schedule.EndDate,
				}
			})
		}
		output.Timetables = append(output.Timetables, perCourse)
	}

	return output
}
