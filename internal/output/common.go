package output

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
	FormatFASTA = "fasta"
)

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "name\tstatus\tlength\tsubstitutions\tdeleted\tmismatches\tresult"

// ReferenceFile is the file the translated reference is written to in --out-dir.
const ReferenceFile = "reference_AA_seq.txt"
