package protocol

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/MayaTheShy/Starworld/constants"
	"github.com/MayaTheShy/Starworld/errors"
)

// packetTypeEnum is the enum holding the packet-type enumeration in the
// reference header (declared inside a PacketType namespace upstream).
const packetTypeEnum = "Value"

// enumSentinel terminates counting: members from the sentinel on are not
// packet types, the sentinel's value is the count of everything before it.
const enumSentinel = "NUM_PACKET_TYPE"

// HeaderSource reads counts and named enum values out of the reference
// header artifact that defines the packet-type enumeration and the
// per-subsystem version counters. It never mutates the artifact; the
// enumeration's declaration order is what assigns indices.
type HeaderSource struct {
	text string
}

// NewHeaderSource wraps already-loaded header text.
func NewHeaderSource(text string) *HeaderSource {
	return &HeaderSource{text: text}
}

// ReadHeaderFile loads a reference header from disk.
func ReadHeaderFile(path string) (*HeaderSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewHeaderSource(string(data)), nil
}

// PacketTypeCount returns the number of entries in the packet-type
// enumeration, counting declaration-ordered members up to the sentinel.
func (h *HeaderSource) PacketTypeCount() (int, error) {
	return h.EnumCount(packetTypeEnum)
}

// EnumCount returns the number of values the named enum enumerates: the
// positional value of the sentinel when the enum declares one (correct even
// when earlier members carry explicit assignments), otherwise the member
// count.
func (h *HeaderSource) EnumCount(name string) (int, error) {
	body, err := h.enumBody(name)
	if err != nil {
		return 0, err
	}

	if v, ok := lookupMember(body, enumSentinel); ok {
		return v, nil
	}
	return len(enumMembers(body)), nil
}

// EnumValue returns the value of one named member of the named enum,
// honoring explicit `Name = N` assignments and implicit positional values.
func (h *HeaderSource) EnumValue(enumName, member string) (int, error) {
	body, err := h.enumBody(enumName)
	if err != nil {
		return 0, err
	}

	v, ok := lookupMember(body, member)
	if !ok {
		return 0, errors.NewError(constants.ErrEnumMemberNotFound, errors.ErrSignatureInputCode, map[string]string{
			"enum":   enumName,
			"member": member,
		})
	}
	return v, nil
}

// Symbols resolves every named version counter the spec's overrides are
// indirected through. The pseudo-member LAST_PACKET_TYPE evaluates to the
// enum's sentinel value minus one.
func (h *HeaderSource) Symbols(spec TableSpec) (map[string]int, error) {
	symbols := map[string]int{}
	for _, o := range spec.Overrides {
		if o.Source == "" {
			continue
		}
		if _, ok := symbols[o.Source]; ok {
			continue
		}
		v, err := h.lookup(o.Source)
		if err != nil {
			return nil, err
		}
		symbols[o.Source] = v
	}
	return symbols, nil
}

// ResolveTableSpec rewrites spec against this header: the packet-type count
// is taken from the enumeration and every sourced override from its named
// counter.
func (h *HeaderSource) ResolveTableSpec(spec TableSpec) (TableSpec, error) {
	count, err := h.PacketTypeCount()
	if err != nil {
		return TableSpec{}, err
	}

	symbols, err := h.Symbols(spec)
	if err != nil {
		return TableSpec{}, err
	}

	out, err := spec.Resolve(symbols)
	if err != nil {
		return TableSpec{}, err
	}
	out.PacketTypes = count
	return out, nil
}

func (h *HeaderSource) lookup(source string) (int, error) {
	enumName, member, ok := strings.Cut(source, "::")
	if !ok {
		return 0, errors.NewError(constants.ErrUnknownVersionSource, errors.ErrSignatureInputCode, map[string]string{
			"source": source,
		})
	}

	// the headers spell this one as an expression (NUM_PACKET_TYPE - 1), so
	// it is evaluated from the sentinel rather than looked up positionally
	if member == "LAST_PACKET_TYPE" {
		count, err := h.EnumCount(enumName)
		if err != nil {
			return 0, err
		}
		return count - 1, nil
	}

	body, err := h.enumBody(enumName)
	if err != nil {
		return 0, err
	}
	if v, found := lookupMember(body, member); found {
		return v, nil
	}
	return 0, errors.NewError(constants.ErrEnumMemberNotFound, errors.ErrSignatureInputCode, map[string]string{
		"enum":   enumName,
		"member": member,
	})
}

func (h *HeaderSource) enumBody(name string) (string, error) {
	re := regexp.MustCompile(`(?s)enum\s+class\s+` + regexp.QuoteMeta(name) + `\b[^{]*\{(.*?)\};`)
	m := re.FindStringSubmatch(h.text)
	if m == nil {
		return "", errors.NewError(constants.ErrEnumNotFound, errors.ErrSignatureInputCode, map[string]string{
			"enum": name,
		})
	}
	return m[1], nil
}

type enumMember struct {
	name     string
	value    int
	hasValue bool
}

// enumMembers walks an enum body line by line, one member per line, the
// declaration style of the reference header. Line comments are stripped.
func enumMembers(body string) []enumMember {
	var members []enumMember
	for _, line := range strings.Split(body, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ","))
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		m := enumMember{name: line}
		if name, value, ok := strings.Cut(line, "="); ok {
			m.name = strings.TrimSpace(name)
			if v, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
				m.value = v
				m.hasValue = true
			}
		}
		members = append(members, m)
	}
	return members
}

// lookupMember evaluates positional values the way the compiler would:
// an explicit numeric assignment resets the counter, every member advances
// it by one.
func lookupMember(body, member string) (int, bool) {
	counter := 0
	for _, m := range enumMembers(body) {
		if m.hasValue {
			counter = m.value
		}
		if m.name == member {
			return counter, true
		}
		counter++
	}
	return 0, false
}
