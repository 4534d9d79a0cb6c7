package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var bpool = sync.Pool{
	New: func() interface{} {
		return new(bytes.Buffer)
	},
}

var json = jsoniter.ConfigFastest

func writeJson(val interface{}) (*bytes.Buffer, error) {
	buf := bpool.Get().(*bytes.Buffer)

	err := json.NewEncoder(buf).Encode(val)
	if err != nil {
		buf.Reset()
		bpool.Put(buf)
		return nil, err
	}

	return buf, nil
}

func writeCsv(val interface{}, columns []string, separator string) (*bytes.Buffer, error) {
	m, ok := val.(map[string]any)
	if !ok {
		return nil, errors.Errorf("csv output expects an object, got %T", val)
	}

	buf := bpool.Get().(*bytes.Buffer)
	csvWriter := csv.NewWriter(buf)
	if separator != "" {
		csvWriter.Comma = []rune(separator)[0]
	}

	record := make([]string, len(columns))
	for i, column := range columns {
		if v, ok := m[column]; ok && v != nil {
			record[i] = fmt.Sprintf("%v", v)
		}
	}

	err := csvWriter.Write(record)
	if err == nil {
		csvWriter.Flush()
		err = csvWriter.Error()
	}
	if err != nil {
		buf.Reset()
		bpool.Put(buf)
		return nil, err
	}

	return buf, nil
}

func newWriterWorker(bytesCh <-chan *bytes.Buffer, wg *sync.WaitGroup, writer io.Writer) {
	defer wg.Done()

	for buf := range bytesCh {
		_, err := buf.WriteTo(writer)
		if err != nil {
			fmt.Println(fmt.Errorf("unexpected write error: %v\n", err))
		}
		buf.Reset()
		bpool.Put(buf)
	}
}
