package analysis

// htmlTemplate is the page layout of the HTML report.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{if .Source}}{{.Source}} - {{end}}Benchmark Results Analysis</title>
    <style>
        :root {
            --bg-primary: #ffffff;
            --bg-secondary: #f8fafc;
            --text-primary: #1e293b;
            --text-secondary: #64748b;
            --text-muted: #94a3b8;
            --border-color: #e2e8f0;
            --accent-primary: #3b82f6;
            --shadow: 0 1px 3px rgba(0, 0, 0, 0.1);
        }

        @media (prefers-color-scheme: dark) {
            :root {
                --bg-primary: #0f172a;
                --bg-secondary: #1e293b;
                --text-primary: #f1f5f9;
                --text-secondary: #94a3b8;
                --text-muted: #64748b;
                --border-color: #334155;
                --shadow: 0 1px 3px rgba(0, 0, 0, 0.3);
            }
        }

        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
            background-color: var(--bg-secondary);
            color: var(--text-primary);
            line-height: 1.6;
        }

        .container {
            max-width: 1100px;
            margin: 0 auto;
            padding: 2rem;
        }

        h1 {
            font-size: 1.75rem;
            margin-bottom: 0.25rem;
        }

        .subtitle {
            color: var(--text-secondary);
            margin-bottom: 2rem;
        }

        .card {
            background: var(--bg-primary);
            border: 1px solid var(--border-color);
            border-radius: 0.5rem;
            box-shadow: var(--shadow);
            padding: 1.5rem;
            margin-bottom: 1.5rem;
        }

        .card h2 {
            font-size: 1.1rem;
            margin-bottom: 1rem;
        }

        table {
            width: 100%;
            border-collapse: collapse;
            font-variant-numeric: tabular-nums;
        }

        th, td {
            padding: 0.5rem 0.75rem;
            border-bottom: 1px solid var(--border-color);
            text-align: right;
        }

        th:first-child, td:first-child {
            text-align: left;
        }

        th {
            color: var(--text-secondary);
            font-weight: 600;
        }

        .samples {
            color: var(--text-muted);
        }

        .summary {
            display: grid;
            grid-template-columns: repeat(auto-fill, minmax(220px, 1fr));
            gap: 1rem;
        }

        .summary .label {
            color: var(--text-secondary);
            font-size: 0.85rem;
        }

        .summary .value {
            font-size: 1.25rem;
            font-weight: 600;
            color: var(--accent-primary);
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>Benchmark Results Analysis</h1>
        <p class="subtitle">{{if .Source}}{{.Source}}{{else}}results{{end}}</p>

        <div class="card">
            <h2>Percentiles</h2>
            <table id="percentiles">
                <thead>
                    <tr>
                        <th>Metric</th>
                        <th>Samples</th>
                        {{range .Labels}}<th>{{.}}</th>{{end}}
                    </tr>
                </thead>
                <tbody>
                    {{range .Metrics}}
                    <tr data-metric="{{.Name}}">
                        <td>{{.Title}}</td>
                        <td class="samples">{{.Samples}}</td>
                        {{range .Values}}<td>{{.}}</td>{{end}}
                    </tr>
                    {{end}}
                </tbody>
            </table>
        </div>

        <div class="card">
            <h2>Summary Statistics</h2>
            <div class="summary">
                {{range .Summary}}
                <div>
                    <div class="label">{{.Label}}</div>
                    <div class="value">{{.Value}}</div>
                </div>
                {{end}}
            </div>
        </div>
    </div>
</body>
</html>
`
