package reports

import (
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/fivelives/tablet-api/models"
)

var emptyList = json.RawMessage(`[]`)

// Each embedded column is unpacked on its own: a malformed document only
// blanks its own field.

func parseList(raw sql.NullString) (gjson.Result, bool) {
	if !raw.Valid || !gjson.Valid(raw.String) {
		return gjson.Result{}, false
	}
	list := gjson.Parse(raw.String)
	return list, list.IsArray()
}

// ParsePeople turns a stored [{citizenid, name}] list into its tablet form
func ParsePeople(raw sql.NullString) []models.PersonView {
	out := []models.PersonView{}
	list, ok := parseList(raw)
	if !ok {
		return out
	}
	for _, p := range list.Array() {
		id, name := p.Get("citizenid"), p.Get("name")
		if !id.Exists() || !name.Exists() {
			return []models.PersonView{}
		}
		out = append(out, models.PersonView{ID: id.String(), Nome: name.String()})
	}
	return out
}

// ParseItems unpacks an ox_inventory data column. Slots without a name or a
// count invalidate the whole list.
func ParseItems(raw sql.NullString) []models.Item {
	out := []models.Item{}
	list, ok := parseList(raw)
	if !ok {
		return out
	}
	for _, it := range list.Array() {
		name, count := it.Get("name"), it.Get("count")
		if !name.Exists() || !count.Exists() {
			return []models.Item{}
		}
		out = append(out, models.Item{
			ID:     name.String(),
			Amount: count.Int(),
			Image:  optionalString(it.Get("metadata.img")),
			URL:    optionalString(it.Get("metadata.imageurl")),
		})
	}
	return out
}

// ParsePlates flattens a stored [{plate}] list
func ParsePlates(raw sql.NullString) []string {
	out := []string{}
	list, ok := parseList(raw)
	if !ok {
		return out
	}
	for _, v := range list.Array() {
		plate := v.Get("plate")
		if !plate.Exists() {
			return []string{}
		}
		out = append(out, plate.String())
	}
	return out
}

func optionalString(r gjson.Result) *string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	s := r.String()
	return &s
}

func nullable(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}

// reportDate keeps numeric timestamps numeric
func reportDate(s sql.NullString) interface{} {
	if !s.Valid {
		return nil
	}
	if n, err := strconv.ParseInt(s.String, 10, 64); err == nil {
		return n
	}
	return s.String
}

func rawDocument(s sql.NullString) json.RawMessage {
	if !s.Valid || !gjson.Valid(s.String) {
		return nil
	}
	return json.RawMessage(s.String)
}

// buildView assembles the tablet view of one report. penalties and bills are
// keyed by citizen id and belong to the same report.
func buildView(row models.ReportRow, ann *models.Annotation, penalties map[string]models.Penalty, bills map[string]models.Bill) models.ReportView {
	view := models.ReportView{
		ID:          row.ID,
		Title:       strings.ToUpper(row.Title.String),
		Date:        reportDate(row.Date),
		Location:    nullable(row.Location),
		Author:      nullable(row.Author),
		Description: nullable(row.Description),
		Implicated:  ParsePeople(row.Implicated),
		Victims:     ParsePeople(row.Victims),
		Cops:        ParsePeople(row.Cops),
		Evidence:    ParseItems(row.Evidence),
		Vehicles:    ParsePlates(row.Vehicles),
		Penalties:   []models.PenaltyView{},
	}
	if ann != nil {
		view.Articles = rawDocument(ann.Articles)
	}

	for _, person := range view.Implicated {
		pena := models.PenaltyView{
			Citizen:  person.ID,
			Articles: emptyList,
		}
		if p, ok := penalties[person.ID]; ok {
			if doc := rawDocument(p.Articles); doc != nil {
				pena.Articles = doc
			}
		}
		if b, ok := bills[person.ID]; ok {
			if b.Price.Valid {
				price := b.Price.Float64
				pena.Price = &price
			}
			if b.Months.Valid {
				months := b.Months.Int64
				pena.Months = &months
			}
			pena.Payed = b.Payed
		}
		view.Penalties = append(view.Penalties, pena)
	}
	return view
}
