package main

import (
	"bytes"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path"
	"strconv"
	"strings"

	"github.com/limaJavier/timetable-generator/pkg/model"

	"github.com/samber/lo"
)

const (
	KB         = 1024
	MB float32 = 1024 * 1024
)

type ResultType int

const (
	found ResultType = iota
	impossible
)

var (
	sortModes   = []string{"default", "sortByWaitingTime", "minimizeClassDays"}
	resultTypes = map[ResultType]string{
		found:      "found",
		impossible: "impossible",
	}
)

type TestMetadata struct {
	Name       string
	Courses    int
	Components int
	Pins       int
}

type BenchmarkResult struct {
	SortMode      string
	Limit         int
	Test          TestMetadata
	Duration      int64
	Memory        float32
	CpuPercentage int64
	Result        ResultType
}

func main() {
	executablePtr := flag.String("executable", "../../bin/timetable", "Path to the CLI executable to benchmark")
	testDirectoryPtr := flag.String("tests", "../../test/inputs/", "Directory holding the input files (.json, .yaml or .yml)")
	limitsPtr := flag.String("limits", "1000,10000,50000", "Comma-separated combination ceilings to benchmark")
	outPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV report")
	flag.Parse()

	limits, err := parseLimits(*limitsPtr)
	if err != nil {
		log.Fatalf("invalid limits: %v", err)
	}

	tests := getTests(*testDirectoryPtr)
	results := make([]BenchmarkResult, 0, len(tests)*len(sortModes)*len(limits))

	for _, test := range tests {
		for _, sortMode := range sortModes {
			for _, limit := range limits {
				fmt.Printf("Benchmarking test \"%v\" with sort mode \"%v\" and limit \"%v\"\n", test.Name, sortMode, limit)

				duration, maxMemory, cpuPercentage, result := measure(*executablePtr, sortMode, limit, test.Name)

				results = append(results, BenchmarkResult{
					SortMode:      sortMode,
					Limit:         limit,
					Test:          test,
					Duration:      duration,
					Memory:        maxMemory,
					CpuPercentage: cpuPercentage,
					Result:        result,
				})
			}
		}
	}

	toCsv(results, *outPtr)
}

func parseLimits(limitsStr string) ([]int, error) {
	limits := make([]int, 0)
	for _, limitStr := range strings.Split(limitsStr, ",") {
		limitStr = strings.TrimSpace(limitStr)
		if limitStr == "" {
			continue
		}
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, err
		} else if limit <= 0 {
			return nil, fmt.Errorf("limit must be greater than 0: %v", limit)
		}
		limits = append(limits, limit)
	}
	if len(limits) == 0 {
		return nil, fmt.Errorf("at least one limit must be given")
	}
	return lo.Uniq(limits), nil
}

func getTests(directory string) []TestMetadata {
	readers := map[string]func(string) (model.Input, error){
		".json": model.InputFromJson,
		".yaml": model.InputFromYaml,
		".yml":  model.InputFromYaml,
	}

	testFiles, err := os.ReadDir(directory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	tests := make([]TestMetadata, 0)
	for _, file := range testFiles {
		readInput, ok := readers[strings.ToLower(path.Ext(file.Name()))]
		if file.IsDir() || !ok {
			continue
		}

		filename := path.Join(directory, file.Name())
		input, err := readInput(filename)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}

		courses, components := input.Size()
		tests = append(tests, TestMetadata{
			Name:       filename,
			Courses:    courses,
			Components: components,
			Pins:       input.Pinned.Len(),
		})
	}

	return tests
}

func measure(executable, sortMode string, limit int, testFile string) (duration int64, maxMemory float32, cpuPercentage int64, result ResultType) {
	cmd := exec.Command("/usr/bin/time", "-v", executable, "-sort", sortMode, "-limit", fmt.Sprint(limit), "-file", testFile, "-out", os.DevNull)

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stdErr bytes.Buffer
	cmd.Stderr = &stdErr

	cmd.Run()
	// Exit-code of 10 stands for timetables found and exit-code 20 stands for impossible
	if cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		log.Fatalf("an error occurred during the execution of \"%v\" at test \"%v\" using sort mode \"%v\" and limit \"%v\": %v\n", executable, testFile, sortMode, limit, stdErr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		result = impossible
	} else {
		result = found
	}
	splits := strings.Split(stdErr.String(), "\n")
	getLine := func(substr string) string {
		line, ok := lo.Find(splits, func(line string) bool {
			return strings.Contains(strings.ToLower(line), substr)
		})
		if !ok {
			log.Fatalf("Substring \"%v\" could not be found", substr)
		}
		return line
	}

	duration = parseDurationLine(getLine("wall clock"))
	maxMemory = parseMemoryLine(getLine("maximum resident set size"))
	cpuPercentage = parseCpuPercentageLine(getLine("percent of cpu"))

	return duration, maxMemory, cpuPercentage, result
}

func toCsv(results []BenchmarkResult, filename string) {
	file, err := os.Create(filename)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Sort-Mode", "Limit", "Test", "Courses", "Components", "Pins", "Duration(ms)", "Memory(MB)", "CPU(%)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		record := []string{
			result.SortMode,
			fmt.Sprintf("%d", result.Limit),
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Courses),
			fmt.Sprintf("%d", result.Test.Components),
			fmt.Sprintf("%d", result.Test.Pins),
			fmt.Sprintf("%d", result.Duration),
			fmt.Sprintf("%.1f", result.Memory),
			fmt.Sprintf("%d", result.CpuPercentage),
			resultTypes[result.Result],
		}
		if err := writer.Write(record); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

func parseDurationLine(line string) int64 {
	durationStr := strings.Split(line, "(h:mm:ss or m:ss):")[1][1:]
	return parseDuration(durationStr)
}

func parseDuration(durationStr string) int64 {
	parts := strings.Split(durationStr, ":")
	secondsStr := parts[len(parts)-1]
	secondsParts := strings.Split(secondsStr, ".")

	var duration int64
	if len(parts) == 3 { // h:mm:ss
		hours := lo.Must(strconv.Atoi(parts[0]))
		minutes := lo.Must(strconv.Atoi(parts[1]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(hours*3600+minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else if len(parts) == 2 { // m:ss
		minutes := lo.Must(strconv.Atoi(parts[0]))
		seconds := lo.Must(strconv.Atoi(secondsParts[0]))
		hundredthOfSeconds := lo.Must(strconv.Atoi(secondsParts[1]))
		duration = int64(minutes*60+seconds)*1000 + int64(hundredthOfSeconds*10)
	} else {
		log.Fatalf("unexpected duration format: %v", durationStr)
	}
	return duration
}

func parseMemoryLine(line string) float32 {
	memoryStr := strings.TrimSpace(strings.Split(line, ":")[1])
	return float32(lo.Must(strconv.ParseFloat(memoryStr, 32))) * KB / MB // time reports kilobytes
}

func parseCpuPercentageLine(line string) int64 {
	percentageStr := strings.TrimSpace(strings.Split(line, ":")[1])
	percentageStr = strings.TrimSuffix(percentageStr, "%")
	return int64(lo.Must(strconv.Atoi(percentageStr)))
}
