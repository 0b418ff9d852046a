package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const dashboardHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>UPIGuard</title>
    <meta name="description" content="Real-time UPI transaction fraud detection demo">
    <link rel="icon" href="data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='.9em' font-size='90'>&#128737;</text></svg>">
    <link rel="preconnect" href="https://fonts.googleapis.com">
    <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@400;500;600&family=JetBrains+Mono:wght@400;500&display=swap" rel="stylesheet">
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }

        :root {
            --bg: #09090b;
            --bg-subtle: #18181b;
            --border: #27272a;
            --text: #fafafa;
            --text-secondary: #a1a1aa;
            --text-tertiary: #52525b;
            --accent: #22c55e;
            --accent-dim: rgba(34, 197, 94, 0.1);
            --red: #ef4444;
            --red-dim: rgba(239, 68, 68, 0.1);
            --blue: #3b82f6;
            --amber: #f59e0b;
        }

        body {
            font-family: 'Inter', -apple-system, sans-serif;
            background: var(--bg);
            color: var(--text);
            min-height: 100vh;
            font-size: 14px;
            line-height: 1.5;
            -webkit-font-smoothing: antialiased;
        }

        .mono { font-family: 'JetBrains Mono', monospace; }

        .container {
            max-width: 1100px;
            margin: 0 auto;
            padding: 0 24px;
        }

        header {
            border-bottom: 1px solid var(--border);
            padding: 16px 0;
            position: sticky;
            top: 0;
            background: var(--bg);
            z-index: 100;
        }

        .header-inner {
            display: flex;
            justify-content: space-between;
            align-items: center;
        }

        .logo {
            display: flex;
            align-items: center;
            gap: 10px;
            font-weight: 600;
            font-size: 15px;
        }

        .live-dot {
            width: 8px;
            height: 8px;
            border-radius: 50%;
            background: var(--text-tertiary);
        }
        .live-dot.connected { background: var(--accent); }

        .live-label {
            font-size: 12px;
            color: var(--text-secondary);
        }

        /* Stats row */
        .stats {
            display: grid;
            grid-template-columns: repeat(4, 1fr);
            gap: 16px;
            padding: 32px 0;
        }

        .stat-card {
            background: var(--bg-subtle);
            border: 1px solid var(--border);
            border-radius: 8px;
            padding: 16px 20px;
        }

        .stat-label {
            font-size: 12px;
            color: var(--text-secondary);
            text-transform: uppercase;
            letter-spacing: 0.05em;
        }

        .stat-value {
            font-size: 28px;
            font-weight: 600;
            margin-top: 4px;
        }

        .stat-value.safe { color: var(--accent); }
        .stat-value.fraud { color: var(--red); }

        /* Form + table layout */
        .main {
            display: grid;
            grid-template-columns: 340px 1fr;
            gap: 24px;
            padding-bottom: 48px;
        }

        .panel {
            background: var(--bg-subtle);
            border: 1px solid var(--border);
            border-radius: 8px;
            padding: 20px;
        }

        .panel h2 {
            font-size: 14px;
            font-weight: 600;
            margin-bottom: 16px;
        }

        label {
            display: block;
            font-size: 12px;
            color: var(--text-secondary);
            margin-bottom: 4px;
            margin-top: 12px;
        }

        input, select {
            width: 100%;
            background: var(--bg);
            border: 1px solid var(--border);
            border-radius: 6px;
            color: var(--text);
            padding: 8px 10px;
            font-size: 13px;
            font-family: inherit;
        }

        input:focus, select:focus {
            outline: none;
            border-color: var(--blue);
        }

        button {
            width: 100%;
            margin-top: 16px;
            background: var(--accent);
            color: #052e16;
            border: none;
            border-radius: 6px;
            padding: 10px;
            font-size: 13px;
            font-weight: 600;
            cursor: pointer;
        }

        button:disabled {
            opacity: 0.5;
            cursor: wait;
        }

        .form-error {
            margin-top: 12px;
            color: var(--red);
            font-size: 12px;
            white-space: pre-line;
        }

        .verdict {
            margin-top: 16px;
            padding: 12px;
            border-radius: 6px;
            font-size: 13px;
            display: none;
        }
        .verdict.safe { display: block; background: var(--accent-dim); color: var(--accent); }
        .verdict.fraud { display: block; background: var(--red-dim); color: var(--red); }

        .signals {
            margin-top: 8px;
            color: var(--text-secondary);
            font-size: 12px;
        }

        /* History table */
        table {
            width: 100%;
            border-collapse: collapse;
            font-size: 13px;
        }

        th {
            text-align: left;
            font-size: 11px;
            text-transform: uppercase;
            letter-spacing: 0.05em;
            color: var(--text-tertiary);
            padding: 8px;
            border-bottom: 1px solid var(--border);
        }

        td {
            padding: 10px 8px;
            border-bottom: 1px solid var(--border);
            color: var(--text-secondary);
        }

        td.merchant { color: var(--text); }

        tr.flash { animation: flash 1.2s ease-out; }
        @keyframes flash {
            from { background: var(--accent-dim); }
            to { background: transparent; }
        }

        .badge {
            display: inline-block;
            padding: 2px 8px;
            border-radius: 10px;
            font-size: 11px;
            font-weight: 600;
        }
        .badge.safe { background: var(--accent-dim); color: var(--accent); }
        .badge.fraud { background: var(--red-dim); color: var(--red); }

        .score-low { color: var(--accent); }
        .score-mid { color: var(--amber); }
        .score-high { color: var(--red); }

        .empty {
            text-align: center;
            color: var(--text-tertiary);
            padding: 32px;
        }

        /* How it works */
        .rules {
            padding-bottom: 64px;
        }

        .rules h2 {
            font-size: 14px;
            font-weight: 600;
            margin-bottom: 12px;
        }

        .rules ul {
            list-style: none;
            color: var(--text-secondary);
            font-size: 13px;
        }

        .rules li {
            padding: 6px 0;
            border-bottom: 1px solid var(--border);
        }

        .rules .pts {
            color: var(--amber);
            font-weight: 600;
        }

        @media (max-width: 860px) {
            .stats { grid-template-columns: repeat(2, 1fr); }
            .main { grid-template-columns: 1fr; }
        }
    </style>
</head>
<body>
    <header>
        <div class="container header-inner">
            <div class="logo">&#128737;&#65039; UPIGuard</div>
            <div class="logo" style="gap:8px">
                <span class="live-dot" id="live-dot"></span>
                <span class="live-label" id="live-label">connecting&hellip;</span>
            </div>
        </div>
    </header>

    <div class="container">
        <div class="stats">
            <div class="stat-card">
                <div class="stat-label">Transactions</div>
                <div class="stat-value" id="stat-total">0</div>
            </div>
            <div class="stat-card">
                <div class="stat-label">Safe</div>
                <div class="stat-value safe" id="stat-safe">0</div>
            </div>
            <div class="stat-card">
                <div class="stat-label">Flagged</div>
                <div class="stat-value fraud" id="stat-fraud">0</div>
            </div>
            <div class="stat-card">
                <div class="stat-label">Fraud rate</div>
                <div class="stat-value" id="stat-rate">0%</div>
            </div>
        </div>

        <div class="main">
            <div class="panel">
                <h2>Check a transaction</h2>
                <form id="txn-form">
                    <label for="amount">Amount (&#8377;)</label>
                    <input id="amount" type="number" step="0.01" min="0" value="1500" required>

                    <label for="merchant">Merchant</label>
                    <input id="merchant" type="text" value="Swiggy" maxlength="500" required>

                    <label for="category">Category</label>
                    <select id="category">
                        <option>food</option>
                        <option>shopping</option>
                        <option>travel</option>
                        <option>entertainment</option>
                        <option>utilities</option>
                        <option>transfer</option>
                        <option>gambling</option>
                        <option>cryptocurrency</option>
                    </select>

                    <label for="device">Device</label>
                    <select id="device">
                        <option>mobile</option>
                        <option>tablet</option>
                        <option>desktop</option>
                        <option>unknown</option>
                    </select>

                    <label for="location">Location</label>
                    <input id="location" type="text" value="Mumbai" maxlength="500" required>

                    <button type="submit" id="submit-btn">Analyze</button>
                </form>
                <div class="form-error" id="form-error"></div>
                <div class="verdict" id="verdict"></div>
            </div>

            <div class="panel">
                <h2>Recent transactions</h2>
                <table>
                    <thead>
                        <tr>
                            <th>Time</th>
                            <th>Merchant</th>
                            <th>Amount</th>
                            <th>Score</th>
                            <th>Status</th>
                        </tr>
                    </thead>
                    <tbody id="history">
                        <tr><td colspan="5" class="empty">No transactions yet. Submit one to get started.</td></tr>
                    </tbody>
                </table>
            </div>
        </div>

        <div class="rules">
            <h2>How scoring works</h2>
            <ul>
                <li>Amount above &#8377;50,000 <span class="pts">+30</span> (above &#8377;20,000 <span class="pts">+15</span>)</li>
                <li>Odd hours, before 6am or after 10pm <span class="pts">+20</span></li>
                <li>Gambling or cryptocurrency category <span class="pts">+25</span></li>
                <li>Unknown device <span class="pts">+15</span></li>
                <li>International location <span class="pts">+20</span></li>
                <li>Score above 50 flags the transaction as likely fraud. Scores cap at 95.</li>
            </ul>
        </div>
    </div>

    <script>
        const historyBody = document.getElementById('history');
        const form = document.getElementById('txn-form');
        const submitBtn = document.getElementById('submit-btn');
        let hasRows = false;

        function scoreClass(score) {
            if (score > 50) return 'score-high';
            if (score > 25) return 'score-mid';
            return 'score-low';
        }

        function fmtAmount(a) {
            return '₹' + Number(a).toLocaleString('en-IN');
        }

        function fmtTime(ts) {
            return new Date(ts).toLocaleTimeString();
        }

        function rowFor(tx) {
            const tr = document.createElement('tr');
            tr.innerHTML =
                '<td class="mono">' + fmtTime(tx.timestamp) + '</td>' +
                '<td class="merchant">' + escapeHTML(tx.merchant) + '</td>' +
                '<td class="mono">' + fmtAmount(tx.amount) + '</td>' +
                '<td class="mono ' + scoreClass(tx.riskScore) + '">' + tx.riskScore + '</td>' +
                '<td><span class="badge ' + tx.status + '">' + tx.status + '</span></td>';
            return tr;
        }

        function escapeHTML(s) {
            const div = document.createElement('div');
            div.textContent = s;
            return div.innerHTML;
        }

        function prependRow(tx) {
            if (!hasRows) {
                historyBody.innerHTML = '';
                hasRows = true;
            }
            const tr = rowFor(tx);
            tr.classList.add('flash');
            historyBody.prepend(tr);
        }

        async function loadStats() {
            const res = await fetch('/v1/stats');
            if (!res.ok) return;
            const { stats } = await res.json();
            document.getElementById('stat-total').textContent = stats.total;
            document.getElementById('stat-safe').textContent = stats.safeCount;
            document.getElementById('stat-fraud').textContent = stats.fraudCount;
            document.getElementById('stat-rate').textContent = stats.fraudRatePercent + '%';
        }

        async function loadHistory() {
            const res = await fetch('/v1/transactions?limit=50');
            if (!res.ok) return;
            const { transactions } = await res.json();
            if (!transactions || transactions.length === 0) return;
            historyBody.innerHTML = '';
            hasRows = true;
            for (const tx of transactions) {
                historyBody.append(rowFor(tx));
            }
        }

        form.addEventListener('submit', async (e) => {
            e.preventDefault();
            submitBtn.disabled = true;
            const errBox = document.getElementById('form-error');
            const verdict = document.getElementById('verdict');
            errBox.textContent = '';
            verdict.className = 'verdict';

            try {
                const res = await fetch('/v1/transactions', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({
                        amount: parseFloat(document.getElementById('amount').value),
                        merchant: document.getElementById('merchant').value,
                        category: document.getElementById('category').value,
                        deviceType: document.getElementById('device').value,
                        location: document.getElementById('location').value,
                    }),
                });
                const body = await res.json();
                if (!res.ok) {
                    if (body.fields) {
                        errBox.textContent = body.fields.map(f => f.field + ': ' + f.message).join('\n');
                    } else {
                        errBox.textContent = body.message || 'Request failed';
                    }
                    return;
                }
                const tx = body.transaction;
                verdict.className = 'verdict ' + tx.status;
                verdict.innerHTML = (tx.status === 'fraud'
                    ? '&#9888;&#65039; Likely fraud (score ' + tx.riskScore + ')'
                    : '&#10003; Looks safe (score ' + tx.riskScore + ')');
                if (tx.signals && tx.signals.length > 0) {
                    verdict.innerHTML += '<div class="signals">' + tx.signals.join(', ') + '</div>';
                }
                loadStats();
            } catch (err) {
                errBox.textContent = 'Network error: ' + err;
            } finally {
                submitBtn.disabled = false;
            }
        });

        // Live feed over WebSocket. The submitting tab also receives its own
        // transaction through the socket, which keeps the table in one place.
        function connect() {
            const proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
            const ws = new WebSocket(proto + '//' + location.host + '/ws');
            const dot = document.getElementById('live-dot');
            const label = document.getElementById('live-label');

            ws.onopen = () => {
                dot.classList.add('connected');
                label.textContent = 'live';
            };
            ws.onclose = () => {
                dot.classList.remove('connected');
                label.textContent = 'reconnecting…';
                setTimeout(connect, 2000);
            };
            ws.onmessage = (msg) => {
                const event = JSON.parse(msg.data);
                if (event.type === 'transaction') {
                    prependRow(event.data);
                    loadStats();
                }
            };
        }

        loadStats();
        loadHistory();
        connect();
    </script>
</body>
</html>`

func dashboardHandler(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, dashboardHTML)
}
