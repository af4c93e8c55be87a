package colplot

import "github.com/ukaji3/colplot-go/pkg/colplot/parser"

// ReadHeader returns the field names in the first record of a file.
func ReadHeader(path string, opts Options) ([]string, error) {
	if opts.ResolveFormat(path) == FormatXLSX {
		return readSheetHeader(path, opts)
	}

	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, err := parser.ReadHeader(f, opts.delimiter())
	if err != nil {
		return nil, readError(path, err)
	}
	return header, nil
}

func readSheetHeader(path string, opts Options) ([]string, error) {
	f, err := openWorkbook(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet, err := parser.ReadSheet(f, opts.Sheet, opts.Range)
	if err != nil {
		return nil, readError(path, err)
	}
	return sheet.Cells[0], nil
}
