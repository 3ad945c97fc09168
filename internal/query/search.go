package query

// TextSearchConfig is the Postgres text search configuration used both by
// the tsvector trigger and by query parsing.
const TextSearchConfig = "english"

// lexicalQuery parses the raw term and rewrites plainto_tsquery's AND of
// lexemes into an OR, so a promotion matching any term is a candidate.
func lexicalQuery(placeholder string) string {
	return "replace(plainto_tsquery('" + TextSearchConfig + "', " + placeholder + ")::text, '&', '|')::tsquery"
}

// searchClause returns the join that restricts the statement to promotions
// matching term, the rank/highlight projections it exposes, and the
// ordering. The join is intersected with the structural predicates of the
// enclosing statement.
func searchClause(term string, args *Args) (string, projections, string) {
	q := lexicalQuery(args.Add(term))
	join := `JOIN (
		SELECT sp.id,
			ts_rank_cd(sp.tsvector, q.query) AS rank,
			ts_headline('` + TextSearchConfig + `', sp.name, q.query, 'HighlightAll=true') AS bold_name,
			ts_headline('` + TextSearchConfig + `', sp.description, q.query, 'MaxFragments=3') AS bold_description
		FROM promotion sp, (SELECT ` + q + ` AS query) q
		WHERE sp.tsvector @@ q.query
	) s ON s.id = p.id`
	proj := projections{
		rank:            "s.rank",
		boldName:        "s.bold_name",
		boldDescription: "s.bold_description",
	}
	return join, proj, "s.rank DESC, p.id"
}
